package handlers

import (
	"net/http"
	"strconv"

	"forum-api/helper"
	"forum-api/models"
	"forum-api/services"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService services.TopicService
	Helper       *helper.HTTPHelper
	Sanitizer    *helper.Sanitizer
}

func NewTopicHandler(topicService services.TopicService, h *helper.HTTPHelper, s *helper.Sanitizer) *TopicHandler {
	return &TopicHandler{topicService: topicService, Helper: h, Sanitizer: s}
}

func (h *TopicHandler) List(c *gin.Context) {
	params := models.ListParams{
		Offset: h.Sanitizer.CleanInt(c.Query("offset"), 0),
		Limit:  h.Sanitizer.CleanInt(c.Query("limit"), 10),
	}

	topics, err := h.topicService.List(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page := h.Helper.PreparePage(h.Helper.BaseURL(c), topics, len(topics), params.Offset, params.Limit, "")
	h.Helper.SendItem(c, http.StatusOK, page)
}

func (h *TopicHandler) Create(c *gin.Context) {
	var req models.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid json"})
		return
	}

	topic, err := h.topicService.Create(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusCreated, topic)
}

func (h *TopicHandler) Patch(c *gin.Context) {
	id, ok := h.topicID(c)
	if !ok {
		return
	}

	var req models.TopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid json"})
		return
	}

	topic, err := h.topicService.Patch(id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusCreated, topic)
}

func (h *TopicHandler) Delete(c *gin.Context) {
	id, ok := h.topicID(c)
	if !ok {
		return
	}

	topic, err := h.topicService.Delete(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, topic)
}

func (h *TopicHandler) topicID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is not an integer"})
		return 0, false
	}
	return uint(id), true
}
