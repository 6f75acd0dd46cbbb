package handlers

import (
	"net/http"

	"forum-api/helper"
	"forum-api/middleware"
	"forum-api/repositories"
	"forum-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewRouter wires the full route table. Authorization policies are ordered
// middleware chains; later stages assume the context values established by
// earlier ones. For admin-target endpoints the admin check runs before the
// record load so non-admins are rejected without a lookup.
func NewRouter(
	h *helper.HTTPHelper,
	authService services.AuthService,
	records repositories.RecordRepository,
	auth *AuthHandler,
	users *UserHandler,
	topics *TopicHandler,
	articles *ArticleHandler,
	comments *CommentHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	requireAuth := middleware.RequireAuth(authService, h)
	requireAdmin := middleware.RequireAdmin(h)
	requireOwner := middleware.RequireOwner(h)
	requireOwnerOrAdmin := middleware.RequireOwnerOrAdmin(h)

	loadUser := middleware.LoadRecord(records, repositories.RecordUsers, h)
	loadArticle := middleware.LoadRecord(records, repositories.RecordArticles, h)
	loadComment := middleware.LoadRecord(records, repositories.RecordComments, h)

	router.GET("/", Index)
	router.POST("/register", auth.Register)
	router.POST("/login", auth.Login)

	u := router.Group("/users")
	{
		u.GET("", requireAuth, users.List)
		u.GET("/:id", requireAuth, loadUser, users.GetRecord)
		u.DELETE("/:id", requireAuth, loadUser, requireOwnerOrAdmin, users.Delete)
		u.PATCH("/me", requireAuth, users.PatchMe)
		u.POST("/:id/requestAdmin", requireAuth, loadUser, requireOwner, users.RequestAdmin)
		u.POST("/:id/cancelAdminRequest", requireAuth, loadUser, requireOwner, users.CancelAdminRequest)
		u.POST("/:id/acceptAdmin", requireAuth, requireAdmin, loadUser, users.AcceptAdmin)
		u.POST("/:id/declineAdmin", requireAuth, requireAdmin, loadUser, users.DeclineAdmin)
		u.GET("/:id/articles", requireAuth, users.Articles)
		u.GET("/:id/comments", requireAuth, users.Comments)
	}

	t := router.Group("/topics")
	{
		t.GET("", requireAuth, topics.List)
		t.POST("", requireAuth, requireAdmin, topics.Create)
		t.PATCH("/:id", requireAuth, requireAdmin, topics.Patch)
		t.DELETE("/:id", requireAuth, requireAdmin, topics.Delete)
	}

	a := router.Group("/articles")
	{
		a.GET("", requireAuth, articles.List)
		a.POST("", requireAuth, articles.Create)
		a.GET("/:id", requireAuth, loadArticle, articles.GetRecord)
		a.POST("/:id", requireAuth, articles.CreateComment)
		a.PATCH("/:id", requireAuth, loadArticle, requireOwner, articles.Patch)
		a.DELETE("/:id", requireAuth, loadArticle, requireOwnerOrAdmin, articles.Delete)
		a.GET("/:id/comments", requireAuth, articles.Comments)
		a.POST("/:id/like", requireAuth, articles.Like)
		a.POST("/:id/dislike", requireAuth, articles.Dislike)
		a.GET("/:id/likes", requireAuth, articles.Likes)
	}

	co := router.Group("/comments")
	{
		co.PATCH("/:id", requireAuth, loadComment, requireOwner, comments.Patch)
		co.DELETE("/:id", requireAuth, loadComment, requireOwnerOrAdmin, comments.Delete)
		co.POST("/:id/like", requireAuth, comments.Like)
		co.POST("/:id/dislike", requireAuth, comments.Dislike)
		co.GET("/:id/likes", requireAuth, comments.Likes)
	}

	return router
}

// Index lists the API surface.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authentication": gin.H{
			"register": "/register",
			"login":    "/login",
		},
		"articles": gin.H{
			"articles":         "/articles?search={query}",
			"article":          "/articles/{id}",
			"article_comments": "/articles/{id}/comments",
			"article_likes":    "/articles/{id}/likes",
		},
		"comments": gin.H{
			"comment_likes": "/comments/{id}/likes",
		},
		"topics": gin.H{
			"topics": "/topics",
		},
		"users": gin.H{
			"users":         "/users?search={query}",
			"user":          "/users/{id}",
			"me":            "/users/me",
			"user_articles": "/users/{id}/articles",
			"user_comments": "/users/{id}/comments",
		},
	})
}
