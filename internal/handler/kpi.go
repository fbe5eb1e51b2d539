package handler

import (
	"net/http"
	"strconv"

	"team-awesome/internal/logger"
	"team-awesome/internal/model"
	"team-awesome/internal/store"

	"github.com/gin-gonic/gin"
)

type KPIHandler struct{ store *store.Store }

func NewKPIHandler(s *store.Store) *KPIHandler { return &KPIHandler{store: s} }

func (h *KPIHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAllKPIs(c.Request.Context()))
}

func (h *KPIHandler) Create(c *gin.Context) {
	var in model.KPIInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	k, err := h.store.CreateKPI(c.Request.Context(), in)
	if err != nil {
		logger.Error("kpis.create.failed", "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, k)
}

func (h *KPIHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in model.KPIInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	k, err := h.store.UpdateKPI(c.Request.Context(), id, in)
	if err != nil {
		logger.Error("kpis.update.failed", "id", id, "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "update failed"})
		return
	}
	if k == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "kpi not found"})
		return
	}
	c.JSON(http.StatusOK, k)
}

func (h *KPIHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.store.DeleteKPI(c.Request.Context(), id); err != nil {
		logger.Error("kpis.delete.failed", "id", id, "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
