package handlers

import (
	"net/http"
	"strconv"

	"forum-api/helper"
	"forum-api/middleware"
	"forum-api/models"
	"forum-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) Patch(c *gin.Context) {
	record := middleware.CurrentRecord(c)
	comment, ok := record.Item.(*models.Comment)
	if !ok {
		h.Helper.SendError(c, models.ErrorInternalServer{Message: "record is not a comment"})
		return
	}

	var req models.PatchCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid json"})
		return
	}

	updated, err := h.commentService.Patch(comment, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, updated)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	record := middleware.CurrentRecord(c)

	if err := h.commentService.Delete(record.ID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, record.Item)
}

func (h *CommentHandler) Likes(c *gin.Context) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	likes, err := h.commentService.LikesForComment(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, likes)
}

func (h *CommentHandler) Like(c *gin.Context) {
	h.vote(c, true)
}

func (h *CommentHandler) Dislike(c *gin.Context) {
	h.vote(c, false)
}

func (h *CommentHandler) vote(c *gin.Context, isLike bool) {
	id, ok := h.commentID(c)
	if !ok {
		return
	}

	like, err := h.commentService.Like(middleware.CurrentUser(c).ID, id, isLike)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, like)
}

func (h *CommentHandler) commentID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is not an integer"})
		return 0, false
	}
	return uint(id), true
}
