package handler

import (
	"net/http"

	"team-awesome/internal/store"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct{ store *store.Store }

func NewTeamHandler(s *store.Store) *TeamHandler { return &TeamHandler{store: s} }

func (h *TeamHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAllTeams(c.Request.Context()))
}

func (h *TeamHandler) Members(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetTeamMembers(c.Request.Context(), c.Param("id")))
}
