package handler

import (
	"net/http"
	"strconv"

	"team-awesome/internal/logger"
	"team-awesome/internal/model"
	"team-awesome/internal/store"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct{ store *store.Store }

func NewBoardHandler(s *store.Store) *BoardHandler { return &BoardHandler{store: s} }

func (h *BoardHandler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAllPosts(c.Request.Context()))
}

// GetPost bumps the view counter as a side effect of reading.
func (h *BoardHandler) GetPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p := h.store.GetPostByID(c.Request.Context(), id)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *BoardHandler) CreatePost(c *gin.Context) {
	var in model.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	id, err := h.store.CreatePost(c.Request.Context(), in)
	if err != nil {
		logger.Error("posts.create.failed", "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "create failed"})
		return
	}
	logger.Info("posts.created", "id", id, "title", in.Title)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *BoardHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in model.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.store.UpdatePost(c.Request.Context(), id, in); err != nil {
		logger.Error("posts.update.failed", "id", id, "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DeletePost hides the post; the row and its comments stay in place.
func (h *BoardHandler) DeletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.store.DeletePost(c.Request.Context(), id); err != nil {
		logger.Error("posts.delete.failed", "id", id, "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *BoardHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetBoardCategories(c.Request.Context()))
}

func (h *BoardHandler) ListComments(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	c.JSON(http.StatusOK, h.store.GetComments(c.Request.Context(), id))
}

func (h *BoardHandler) AddComment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in model.CommentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	cm, err := h.store.AddComment(c.Request.Context(), id, in)
	if err != nil {
		logger.Error("comments.create.failed", "post_id", id, "err", err)
		c.JSON(storageStatus(err), gin.H{"error": "comment failed"})
		return
	}
	c.JSON(http.StatusCreated, cm)
}
