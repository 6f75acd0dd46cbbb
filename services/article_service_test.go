package services

import (
	"testing"

	"forum-api/helper"
	"forum-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type articleFixture struct {
	articleRepo *fakeArticleRepo
	topicRepo   *fakeTopicRepo
	commentRepo *fakeCommentRepo
	likeRepo    *fakeLikeRepo
	svc         ArticleService
}

func newArticleFixture(t *testing.T, topics ...string) *articleFixture {
	t.Helper()

	validator, err := helper.NewValidator()
	require.NoError(t, err)

	f := &articleFixture{
		articleRepo: newFakeArticleRepo(),
		topicRepo:   newFakeTopicRepo(topics...),
		commentRepo: newFakeCommentRepo(),
	}
	f.likeRepo = newFakeLikeRepo(f.articleRepo, f.commentRepo)
	f.svc = NewArticleService(f.articleRepo, f.topicRepo, f.commentRepo, f.likeRepo, helper.NewSanitizer(), validator)
	return f
}

func TestArticleCreate(t *testing.T) {
	f := newArticleFixture(t, "science")

	t.Run("valid article is stored sanitized", func(t *testing.T) {
		article, err := f.svc.Create(1, models.CreateArticleRequest{
			Topic: "science",
			Title: "<b>Gravity</b>",
			Body:  "Things fall down.",
		})
		require.NoError(t, err)

		assert.Equal(t, uint(1), article.UserID)
		assert.Equal(t, "Gravity", article.Title)
		assert.NotZero(t, article.ID)
	})

	t.Run("missing topic joins the validation list", func(t *testing.T) {
		_, err := f.svc.Create(1, models.CreateArticleRequest{
			Topic: "history",
			Title: "Rome",
			Body:  "It fell.",
		})

		var vErr models.ErrorValidation
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Validation, 1)
		assert.Equal(t, "topic", vErr.Validation[0].Field)
		assert.Equal(t, "Topic does not exist", vErr.Validation[0].Message)
	})

	t.Run("field violations and missing topic are collected together", func(t *testing.T) {
		_, err := f.svc.Create(1, models.CreateArticleRequest{Topic: "x", Title: "", Body: ""})

		var vErr models.ErrorValidation
		require.ErrorAs(t, err, &vErr)
		assert.Len(t, vErr.Validation, 4)
	})
}

func TestArticlePatch(t *testing.T) {
	f := newArticleFixture(t, "science")

	article, err := f.svc.Create(1, models.CreateArticleRequest{
		Topic: "science",
		Title: "Gravity",
		Body:  "Things fall down.",
	})
	require.NoError(t, err)

	t.Run("unspecified fields keep the stored value", func(t *testing.T) {
		updated, err := f.svc.Patch(article, models.PatchArticleRequest{Title: "Gravity, revised"})
		require.NoError(t, err)

		assert.Equal(t, "Gravity, revised", updated.Title)
		assert.Equal(t, "science", updated.Topic)
		assert.Equal(t, "Things fall down.", updated.Body)
	})

	t.Run("merged record is validated", func(t *testing.T) {
		_, err := f.svc.Patch(article, models.PatchArticleRequest{Topic: "x"})

		var vErr models.ErrorValidation
		require.ErrorAs(t, err, &vErr)
	})
}

func TestArticleRelations(t *testing.T) {
	f := newArticleFixture(t, "science")

	article, err := f.svc.Create(1, models.CreateArticleRequest{
		Topic: "science",
		Title: "Gravity",
		Body:  "Things fall down.",
	})
	require.NoError(t, err)
	require.NoError(t, f.commentRepo.Create(&models.Comment{UserID: 2, ArticleID: article.ID, Title: "hm", Body: "really?"}))

	t.Run("comments for existing article", func(t *testing.T) {
		comments, err := f.svc.CommentsForArticle(article.ID)
		require.NoError(t, err)
		require.Len(t, comments, 1)
	})

	t.Run("missing article is not found", func(t *testing.T) {
		_, err := f.svc.CommentsForArticle(article.ID + 100)
		var nfErr models.ErrorNotFound
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "Article not found", nfErr.Message)

		_, err = f.svc.LikesForArticle(article.ID + 100)
		require.ErrorAs(t, err, &nfErr)
	})
}

func TestArticleLike(t *testing.T) {
	f := newArticleFixture(t, "science")

	article, err := f.svc.Create(1, models.CreateArticleRequest{
		Topic: "science",
		Title: "Gravity",
		Body:  "Things fall down.",
	})
	require.NoError(t, err)

	t.Run("vote on missing article is not found", func(t *testing.T) {
		_, err := f.svc.Like(2, article.ID+100, true)

		var nfErr models.ErrorNotFound
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, "Record not found!", nfErr.Message)
	})

	t.Run("repeat vote overwrites rather than duplicates", func(t *testing.T) {
		_, err := f.svc.Like(2, article.ID, true)
		require.NoError(t, err)
		_, err = f.svc.Like(2, article.ID, true)
		require.NoError(t, err)

		likes, err := f.svc.LikesForArticle(article.ID)
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.True(t, likes[0].IsLike)
	})

	t.Run("dislike flips the same row", func(t *testing.T) {
		_, err := f.svc.Like(2, article.ID, false)
		require.NoError(t, err)

		likes, err := f.svc.LikesForArticle(article.ID)
		require.NoError(t, err)
		require.Len(t, likes, 1)
		assert.False(t, likes[0].IsLike)
	})
}
