package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"course_leads_backend/models"
	"course_leads_backend/store"
)

type CommentHandler struct {
	store store.Store
}

func NewCommentHandler(s store.Store) *CommentHandler {
	return &CommentHandler{store: s}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if !bindBody(c, &req) {
		return
	}

	comment, err := h.store.CreateComment(c.Request.Context(), pathID(c, "leadId"), req)
	if err != nil {
		respondStoreError(c, err, "", "Error adding comment")
		return
	}

	c.JSON(http.StatusOK, comment)
}
