package services

import (
	"testing"

	"forum-api/helper"
	"forum-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T, userRepo *fakeUserRepo, articleRepo *fakeArticleRepo, commentRepo *fakeCommentRepo) UserService {
	t.Helper()
	validator, err := helper.NewValidator()
	require.NoError(t, err)
	return NewUserService(userRepo, articleRepo, commentRepo, helper.NewSanitizer(), validator)
}

func seedUser(t *testing.T, repo *fakeUserRepo, user models.User) *models.User {
	t.Helper()
	require.NoError(t, repo.Create(&user))
	return repo.users[user.ID]
}

func TestUserPatch(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestUserService(t, userRepo, newFakeArticleRepo(), newFakeCommentRepo())

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := seedUser(t, userRepo, models.User{Username: "alice", Name: "Alice A", Password: string(hashed)})

	t.Run("unspecified fields keep the stored value", func(t *testing.T) {
		updated, err := svc.Patch(user, models.PatchUserRequest{Name: "Alice B"})
		require.NoError(t, err)

		assert.Equal(t, "alice", updated.Username)
		assert.Equal(t, "Alice B", updated.Name)
		assert.Equal(t, string(hashed), updated.Password, "password must not change")
	})

	t.Run("changing the password rehashes it", func(t *testing.T) {
		updated, err := svc.Patch(user, models.PatchUserRequest{Password: "newsecret"})
		require.NoError(t, err)

		assert.NotEqual(t, string(hashed), updated.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newsecret")))
	})

	t.Run("merged record is validated as a whole", func(t *testing.T) {
		_, err := svc.Patch(user, models.PatchUserRequest{Username: "ab"})

		var vErr models.ErrorValidation
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Validation, 1)
		assert.Equal(t, "username", vErr.Validation[0].Field)
	})

	t.Run("short new password is rejected", func(t *testing.T) {
		_, err := svc.Patch(user, models.PatchUserRequest{Password: "123"})

		var vErr models.ErrorValidation
		require.ErrorAs(t, err, &vErr)
		require.Len(t, vErr.Validation, 1)
		assert.Equal(t, "password", vErr.Validation[0].Field)
	})
}

func TestSetPending(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestUserService(t, userRepo, newFakeArticleRepo(), newFakeCommentRepo())

	t.Run("request marks the user pending", func(t *testing.T) {
		user := seedUser(t, userRepo, models.User{Username: "bob", Name: "Bob", Password: "x"})

		updated, err := svc.SetPending(user, true)
		require.NoError(t, err)
		assert.True(t, updated.Pending)
		assert.True(t, userRepo.users[user.ID].Pending)
	})

	t.Run("admins pass through unchanged", func(t *testing.T) {
		admin := seedUser(t, userRepo, models.User{Username: "root", Name: "Root", Password: "x", Admin: true})

		updated, err := svc.SetPending(admin, true)
		require.NoError(t, err)
		assert.False(t, updated.Pending)
	})

	t.Run("same state is a no-op", func(t *testing.T) {
		user := seedUser(t, userRepo, models.User{Username: "carol", Name: "Carol", Password: "x", Pending: true})

		updated, err := svc.SetPending(user, true)
		require.NoError(t, err)
		assert.Same(t, user, updated)
	})

	t.Run("cancel clears the flag", func(t *testing.T) {
		user := seedUser(t, userRepo, models.User{Username: "dave", Name: "Dave", Password: "x", Pending: true})

		updated, err := svc.SetPending(user, false)
		require.NoError(t, err)
		assert.False(t, updated.Pending)
	})
}

func TestSetAdmin(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newTestUserService(t, userRepo, newFakeArticleRepo(), newFakeCommentRepo())

	t.Run("accept grants admin and clears pending", func(t *testing.T) {
		user := seedUser(t, userRepo, models.User{Username: "bob", Name: "Bob", Password: "x", Pending: true})

		updated, err := svc.SetAdmin(user, true)
		require.NoError(t, err)
		assert.True(t, updated.Admin)
		assert.False(t, updated.Pending)
	})

	t.Run("decline keeps the user plain and clears pending", func(t *testing.T) {
		user := seedUser(t, userRepo, models.User{Username: "carol", Name: "Carol", Password: "x", Pending: true})

		updated, err := svc.SetAdmin(user, false)
		require.NoError(t, err)
		assert.False(t, updated.Admin)
		assert.True(t, updated.Pending, "already-plain target passes through unchanged")
	})

	t.Run("already admin is a no-op", func(t *testing.T) {
		admin := seedUser(t, userRepo, models.User{Username: "root", Name: "Root", Password: "x", Admin: true})

		updated, err := svc.SetAdmin(admin, true)
		require.NoError(t, err)
		assert.Same(t, admin, updated)
	})
}

func TestArticlesByUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	articleRepo := newFakeArticleRepo()
	svc := newTestUserService(t, userRepo, articleRepo, newFakeCommentRepo())

	user := seedUser(t, userRepo, models.User{Username: "alice", Name: "Alice", Password: "x"})
	require.NoError(t, articleRepo.Create(&models.Article{UserID: user.ID, Topic: "go", Title: "First", Body: "body"}))
	require.NoError(t, articleRepo.Create(&models.Article{UserID: user.ID + 1, Topic: "go", Title: "Other", Body: "body"}))

	articles, err := svc.ArticlesByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "First", articles[0].Title)

	_, err = svc.ArticlesByUser(user.ID + 100)
	var nfErr models.ErrorNotFound
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "User not found", nfErr.Message)
}

func TestCommentsByUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	commentRepo := newFakeCommentRepo()
	svc := newTestUserService(t, userRepo, newFakeArticleRepo(), commentRepo)

	user := seedUser(t, userRepo, models.User{Username: "alice", Name: "Alice", Password: "x"})
	require.NoError(t, commentRepo.Create(&models.Comment{UserID: user.ID, ArticleID: 1, Title: "hi", Body: "text"}))

	comments, err := svc.CommentsByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)

	_, err = svc.CommentsByUser(user.ID + 100)
	var nfErr models.ErrorNotFound
	require.ErrorAs(t, err, &nfErr)
}
