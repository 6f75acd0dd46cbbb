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

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
	Sanitizer   *helper.Sanitizer
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper, s *helper.Sanitizer) *UserHandler {
	return &UserHandler{userService: userService, Helper: h, Sanitizer: s}
}

func (h *UserHandler) List(c *gin.Context) {
	params := models.ListParams{
		Offset: h.Sanitizer.CleanInt(c.Query("offset"), 0),
		Limit:  h.Sanitizer.CleanInt(c.Query("limit"), 10),
		Search: h.Sanitizer.CleanSearch(c.Query("search")),
	}

	users, err := h.userService.List(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page := h.Helper.PreparePage(h.Helper.BaseURL(c), users, len(users), params.Offset, params.Limit, params.Search)
	h.Helper.SendItem(c, http.StatusOK, page)
}

// GetRecord responds with the record the authorization chain loaded.
func (h *UserHandler) GetRecord(c *gin.Context) {
	record := middleware.CurrentRecord(c)
	h.Helper.SendItem(c, http.StatusOK, record.Item)
}

func (h *UserHandler) Delete(c *gin.Context) {
	record := middleware.CurrentRecord(c)

	if err := h.userService.Delete(record.ID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, record.Item)
}

func (h *UserHandler) PatchMe(c *gin.Context) {
	var req models.PatchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid json"})
		return
	}

	user, err := h.userService.Patch(middleware.CurrentUser(c), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, user)
}

func (h *UserHandler) RequestAdmin(c *gin.Context) {
	h.setPending(c, true)
}

func (h *UserHandler) CancelAdminRequest(c *gin.Context) {
	h.setPending(c, false)
}

func (h *UserHandler) setPending(c *gin.Context, pending bool) {
	user, err := h.userService.SetPending(middleware.CurrentUser(c), pending)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, user)
}

func (h *UserHandler) AcceptAdmin(c *gin.Context) {
	h.setAdmin(c, true)
}

func (h *UserHandler) DeclineAdmin(c *gin.Context) {
	h.setAdmin(c, false)
}

func (h *UserHandler) setAdmin(c *gin.Context, admin bool) {
	record := middleware.CurrentRecord(c)
	target, ok := record.Item.(*models.User)
	if !ok {
		h.Helper.SendError(c, models.ErrorInternalServer{Message: "record is not a user"})
		return
	}

	user, err := h.userService.SetAdmin(target, admin)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, user)
}

func (h *UserHandler) Articles(c *gin.Context) {
	id, ok := h.subjectID(c)
	if !ok {
		return
	}

	articles, err := h.userService.ArticlesByUser(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, articles)
}

func (h *UserHandler) Comments(c *gin.Context) {
	id, ok := h.subjectID(c)
	if !ok {
		return
	}

	comments, err := h.userService.CommentsByUser(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, comments)
}

// subjectID resolves the :id path segment, honoring the "me" shorthand.
func (h *UserHandler) subjectID(c *gin.Context) (uint, bool) {
	paramID := c.Param("id")
	if paramID == "me" {
		return middleware.CurrentUser(c).ID, true
	}

	id, err := strconv.Atoi(paramID)
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is not an integer"})
		return 0, false
	}

	return uint(id), true
}
