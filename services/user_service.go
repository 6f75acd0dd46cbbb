package services

import (
	"errors"
	"sync"

	"forum-api/config"
	"forum-api/helper"
	"forum-api/models"
	"forum-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// passwordPlaceholder stands in for the stored password during patch
// validation: the stored value is a digest and is never re-validated.
const passwordPlaceholder = "unchanged-password"

type UserService interface {
	List(params models.ListParams) ([]models.User, error)
	Patch(user *models.User, req models.PatchUserRequest) (*models.User, error)
	Delete(id uint) error
	SetPending(user *models.User, pending bool) (*models.User, error)
	SetAdmin(target *models.User, admin bool) (*models.User, error)
	ArticlesByUser(id uint) ([]models.Article, error)
	CommentsByUser(id uint) ([]models.Comment, error)
}

type userService struct {
	userRepo    repositories.UserRepository
	articleRepo repositories.ArticleRepository
	commentRepo repositories.CommentRepository
	sanitizer   *helper.Sanitizer
	validator   *helper.Validator
}

func NewUserService(userRepo repositories.UserRepository, articleRepo repositories.ArticleRepository, commentRepo repositories.CommentRepository, sanitizer *helper.Sanitizer, validator *helper.Validator) UserService {
	return &userService{
		userRepo:    userRepo,
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		sanitizer:   sanitizer,
		validator:   validator,
	}
}

func (s *userService) List(params models.ListParams) ([]models.User, error) {
	var (
		users []models.User
		err   error
	)
	if params.Search != "" {
		users, err = s.userRepo.Search(params)
	} else {
		users, err = s.userRepo.List(params)
	}
	if err != nil {
		return nil, models.ErrorQuery{Message: "Error getting users", Err: err}
	}
	return users, nil
}

// Patch applies a partial self-update. Unspecified fields keep the stored
// value; the password is hashed and re-validated only when it is changing.
func (s *userService) Patch(user *models.User, req models.PatchUserRequest) (*models.User, error) {
	username := user.Username
	if req.Username != "" {
		username = s.sanitizer.Clean(req.Username)
	}

	name := user.Name
	if req.Name != "" {
		name = s.sanitizer.Clean(req.Name)
	}

	password := passwordPlaceholder
	if req.Password != "" {
		password = s.sanitizer.Clean(req.Password)
	}

	if validation := s.validator.ValidateUser(username, name, password); len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	updated := *user
	updated.Username = username
	updated.Name = name

	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.BcryptCost)
		if err != nil {
			return nil, models.ErrorInternalServer{Message: "Error hashing password", Err: err}
		}
		updated.Password = string(hashed)
	}

	if err := s.userRepo.Update(&updated); err != nil {
		return nil, models.ErrorQuery{Message: "Error updating user", Err: err}
	}

	return &updated, nil
}

func (s *userService) Delete(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Record not found!"}
		}
		return models.ErrorQuery{Message: "Error deleting user", Err: err}
	}
	return nil
}

// SetPending records or withdraws an admin request. Admins and users already
// in the requested state pass through unchanged.
func (s *userService) SetPending(user *models.User, pending bool) (*models.User, error) {
	if user.Admin || user.Pending == pending {
		return user, nil
	}

	updated := *user
	updated.Pending = pending

	if err := s.userRepo.Update(&updated); err != nil {
		return nil, models.ErrorQuery{Message: "Error updating user", Err: err}
	}

	return &updated, nil
}

// SetAdmin resolves a pending admin request. Granting and revoking both clear
// the pending flag; a target already in the requested state passes through.
func (s *userService) SetAdmin(target *models.User, admin bool) (*models.User, error) {
	if target.Admin == admin {
		return target, nil
	}

	updated := *target
	updated.Admin = admin
	updated.Pending = false

	if err := s.userRepo.Update(&updated); err != nil {
		return nil, models.ErrorQuery{Message: "Error updating user", Err: err}
	}

	return &updated, nil
}

func (s *userService) ArticlesByUser(id uint) ([]models.Article, error) {
	var (
		wg       sync.WaitGroup
		userErr  error
		articles []models.Article
		listErr  error
	)

	// Both reads run concurrently; the combined result is built only after
	// both complete.
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, userErr = s.userRepo.GetByID(id)
	}()
	go func() {
		defer wg.Done()
		articles, listErr = s.articleRepo.ListByUser(id)
	}()
	wg.Wait()

	if userErr != nil {
		if errors.Is(userErr, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorQuery{Message: "Error getting user records", Code: 500, Err: userErr}
	}

	if listErr != nil {
		return nil, models.ErrorQuery{Message: "Error getting user articles", Err: listErr}
	}

	return articles, nil
}

func (s *userService) CommentsByUser(id uint) ([]models.Comment, error) {
	var (
		wg       sync.WaitGroup
		userErr  error
		comments []models.Comment
		listErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, userErr = s.userRepo.GetByID(id)
	}()
	go func() {
		defer wg.Done()
		comments, listErr = s.commentRepo.ListByUser(id)
	}()
	wg.Wait()

	if userErr != nil {
		if errors.Is(userErr, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "User not found"}
		}
		return nil, models.ErrorQuery{Message: "Error getting user records", Code: 500, Err: userErr}
	}

	if listErr != nil {
		return nil, models.ErrorQuery{Message: "Error getting user comments", Err: listErr}
	}

	return comments, nil
}
