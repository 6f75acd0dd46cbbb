package services

import (
	"errors"
	"sync"

	"forum-api/helper"
	"forum-api/models"
	"forum-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateOnArticle(userID, articleID uint, req models.CreateCommentRequest) (*models.Comment, error)
	Patch(record *models.Comment, req models.PatchCommentRequest) (*models.Comment, error)
	Delete(id uint) error
	LikesForComment(id uint) ([]models.CommentLike, error)
	Like(userID, commentID uint, isLike bool) (*models.CommentLike, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	likeRepo    repositories.LikeRepository
	sanitizer   *helper.Sanitizer
	validator   *helper.Validator
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, likeRepo repositories.LikeRepository, sanitizer *helper.Sanitizer, validator *helper.Validator) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		likeRepo:    likeRepo,
		sanitizer:   sanitizer,
		validator:   validator,
	}
}

// CreateOnArticle stores a comment after confirming the target article
// exists.
func (s *commentService) CreateOnArticle(userID, articleID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(articleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, models.ErrorQuery{Message: "Error finding article to comment on", Err: err}
	}

	if validation := s.validator.ValidateComment(req.Title, req.Body); len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	comment := &models.Comment{
		UserID:    userID,
		ArticleID: articleID,
		Title:     s.sanitizer.Clean(req.Title),
		Body:      s.sanitizer.Clean(req.Body),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, models.ErrorQuery{Message: "Error commenting on article", Err: err}
	}

	return comment, nil
}

func (s *commentService) Patch(record *models.Comment, req models.PatchCommentRequest) (*models.Comment, error) {
	title := record.Title
	if req.Title != "" {
		title = s.sanitizer.Clean(req.Title)
	}

	body := record.Body
	if req.Body != "" {
		body = s.sanitizer.Clean(req.Body)
	}

	if validation := s.validator.ValidateComment(title, body); len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	updated := *record
	updated.Title = title
	updated.Body = body

	if err := s.commentRepo.Update(&updated); err != nil {
		return nil, models.ErrorQuery{Message: "Error updating comment", Err: err}
	}

	return &updated, nil
}

func (s *commentService) Delete(id uint) error {
	if err := s.commentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Record not found!"}
		}
		return models.ErrorQuery{Message: "Error deleting comment", Err: err}
	}
	return nil
}

func (s *commentService) LikesForComment(id uint) ([]models.CommentLike, error) {
	var (
		wg         sync.WaitGroup
		commentErr error
		likes      []models.CommentLike
		listErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, commentErr = s.commentRepo.GetByID(id)
	}()
	go func() {
		defer wg.Done()
		likes, listErr = s.likeRepo.ListByComment(id)
	}()
	wg.Wait()

	if commentErr != nil {
		if errors.Is(commentErr, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Comment not found"}
		}
		return nil, models.ErrorQuery{Message: "Error finding comment", Code: 500, Err: commentErr}
	}

	if listErr != nil {
		return nil, models.ErrorQuery{Message: "Error finding likes", Err: listErr}
	}

	return likes, nil
}

func (s *commentService) Like(userID, commentID uint, isLike bool) (*models.CommentLike, error) {
	like := &models.CommentLike{UserID: userID, CommentID: commentID, IsLike: isLike}

	if err := s.likeRepo.UpsertCommentLike(like); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.ErrorNotFound{Message: "Record not found!"}
		}
		return nil, models.ErrorQuery{Message: "Error posting like/dislike", Err: err}
	}

	return like, nil
}
