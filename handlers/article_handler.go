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

type ArticleHandler struct {
	articleService services.ArticleService
	commentService services.CommentService
	Helper         *helper.HTTPHelper
	Sanitizer      *helper.Sanitizer
}

func NewArticleHandler(articleService services.ArticleService, commentService services.CommentService, h *helper.HTTPHelper, s *helper.Sanitizer) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		commentService: commentService,
		Helper:         h,
		Sanitizer:      s,
	}
}

func (h *ArticleHandler) List(c *gin.Context) {
	params := models.ListParams{
		Offset: h.Sanitizer.CleanInt(c.Query("offset"), 0),
		Limit:  h.Sanitizer.CleanInt(c.Query("limit"), 10),
		Search: h.Sanitizer.CleanSearch(c.Query("search")),
	}

	articles, err := h.articleService.List(params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	page := h.Helper.PreparePage(h.Helper.BaseURL(c), articles, len(articles), params.Offset, params.Limit, params.Search)
	h.Helper.SendItem(c, http.StatusOK, page)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid json"})
		return
	}

	article, err := h.articleService.Create(middleware.CurrentUser(c).ID, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusCreated, article)
}

func (h *ArticleHandler) GetRecord(c *gin.Context) {
	record := middleware.CurrentRecord(c)
	h.Helper.SendItem(c, http.StatusOK, record.Item)
}

// CreateComment handles POST /articles/:id, commenting on an article.
func (h *ArticleHandler) CreateComment(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid json"})
		return
	}

	comment, err := h.commentService.CreateOnArticle(middleware.CurrentUser(c).ID, id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusCreated, comment)
}

func (h *ArticleHandler) Patch(c *gin.Context) {
	record := middleware.CurrentRecord(c)
	article, ok := record.Item.(*models.Article)
	if !ok {
		h.Helper.SendError(c, models.ErrorInternalServer{Message: "record is not an article"})
		return
	}

	var req models.PatchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid json"})
		return
	}

	updated, err := h.articleService.Patch(article, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusCreated, updated)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	record := middleware.CurrentRecord(c)

	if err := h.articleService.Delete(record.ID); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, record.Item)
}

func (h *ArticleHandler) Comments(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	comments, err := h.articleService.CommentsForArticle(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, comments)
}

func (h *ArticleHandler) Likes(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	likes, err := h.articleService.LikesForArticle(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, likes)
}

func (h *ArticleHandler) Like(c *gin.Context) {
	h.vote(c, true)
}

func (h *ArticleHandler) Dislike(c *gin.Context) {
	h.vote(c, false)
}

func (h *ArticleHandler) vote(c *gin.Context, isLike bool) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	like, err := h.articleService.Like(middleware.CurrentUser(c).ID, id, isLike)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.Helper.SendItem(c, http.StatusOK, like)
}

func (h *ArticleHandler) articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID is not an integer"})
		return 0, false
	}
	return uint(id), true
}
