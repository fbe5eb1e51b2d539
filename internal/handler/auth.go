package handler

import (
	"errors"
	"net/http"
	"time"

	"team-awesome/internal/logger"
	"team-awesome/internal/middleware"
	"team-awesome/internal/model"
	"team-awesome/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type AuthHandler struct{ store *store.Store }

func NewAuthHandler(s *store.Store) *AuthHandler { return &AuthHandler{store: s} }

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.store.Login(c.Request.Context(), req.EmpID, req.Password)
	switch {
	case errors.Is(err, store.ErrInvalidLogin):
		logger.Warn("login.failed", "emp_id", req.EmpID)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	case errors.Is(err, store.ErrNoDatabase):
		logger.Error("login.unavailable", "emp_id", req.EmpID)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
		return
	case err != nil:
		logger.Error("login.error", "emp_id", req.EmpID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	logger.Info("login.ok", "uid", u.ID, "name", u.Name)

	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  u.ID,
		"name": u.Name,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}).SignedString(middleware.JWTSecret)

	c.JSON(http.StatusOK, model.LoginResponse{Token: token, User: *u})
}
