package handler

import (
	"net/http"
	"strconv"

	"team-awesome/internal/logger"
	"team-awesome/internal/model"
	"team-awesome/internal/roster"
	"team-awesome/internal/store"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	store  *store.Store
	roster *roster.Roster
}

func NewMemberHandler(s *store.Store, r *roster.Roster) *MemberHandler {
	return &MemberHandler{store: s, roster: r}
}

func (h *MemberHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAllMembers(c.Request.Context()))
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	m := h.store.GetMemberByID(c.Request.Context(), id)
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MemberHandler) Create(c *gin.Context) {
	var in model.MemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id, err := h.store.CreateMember(c.Request.Context(), in)
	if err != nil {
		logger.Error("members.create.failed", "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "create failed"})
		return
	}
	logger.Info("members.created", "id", id, "name", in.Name)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in model.MemberInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.store.UpdateMember(c.Request.Context(), id, in); err != nil {
		logger.Error("members.update.failed", "id", id, "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.store.DeleteMember(c.Request.Context(), id); err != nil {
		logger.Error("members.delete.failed", "id", id, "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// UpdateOrder persists an explicit full ordering, first id is position 0.
func (h *MemberHandler) UpdateOrder(c *gin.Context) {
	var req model.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.store.UpdateOrder(c.Request.Context(), req.Order); err != nil {
		logger.Error("members.order.failed", "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "reorder failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Move applies one drag-end event to the in-memory roster and answers with
// the new ordering right away; persistence runs in the background and a
// late failure does not revert the response.
func (h *MemberHandler) Move(c *gin.Context) {
	var req model.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	h.roster.Load(h.store.GetAllMembers(c.Request.Context()))
	if !h.roster.DragEnd(c.Request.Context(), req.ID, req.Target) {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}
	c.JSON(http.StatusOK, h.roster.Members())
}

func (h *MemberHandler) StatCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetStatCategories(c.Request.Context()))
}
