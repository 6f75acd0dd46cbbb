package services

import (
	"errors"
	"sync"

	"forum-api/helper"
	"forum-api/models"
	"forum-api/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	Create(userID uint, req models.CreateArticleRequest) (*models.Article, error)
	Patch(record *models.Article, req models.PatchArticleRequest) (*models.Article, error)
	Delete(id uint) error
	List(params models.ListParams) ([]models.Article, error)
	CommentsForArticle(id uint) ([]models.Comment, error)
	LikesForArticle(id uint) ([]models.ArticleLike, error)
	Like(userID, articleID uint, isLike bool) (*models.ArticleLike, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	topicRepo   repositories.TopicRepository
	commentRepo repositories.CommentRepository
	likeRepo    repositories.LikeRepository
	sanitizer   *helper.Sanitizer
	validator   *helper.Validator
}

func NewArticleService(articleRepo repositories.ArticleRepository, topicRepo repositories.TopicRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, sanitizer *helper.Sanitizer, validator *helper.Validator) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		sanitizer:   sanitizer,
		validator:   validator,
	}
}

// Create stores a new article after checking that its topic exists. The
// missing-topic case joins the field validation list rather than becoming a
// separate error.
func (s *articleService) Create(userID uint, req models.CreateArticleRequest) (*models.Article, error) {
	topicExists, err := s.topicRepo.ExistsByName(req.Topic)
	if err != nil {
		return nil, models.ErrorQuery{Message: "Error getting topics", Err: err}
	}

	validation := s.validator.ValidateArticle(req.Topic, req.Title, req.Body)
	if !topicExists {
		validation = append(validation, models.FieldError{Field: "topic", Message: "Topic does not exist"})
	}
	if len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	article := &models.Article{
		UserID: userID,
		Topic:  s.sanitizer.Clean(req.Topic),
		Title:  s.sanitizer.Clean(req.Title),
		Body:   s.sanitizer.Clean(req.Body),
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, models.ErrorQuery{Message: "Error creating article", Err: err}
	}

	return article, nil
}

// Patch applies a partial update over the loaded record; unspecified fields
// keep the stored value and the merged result is validated as a whole.
func (s *articleService) Patch(record *models.Article, req models.PatchArticleRequest) (*models.Article, error) {
	topic := record.Topic
	if req.Topic != "" {
		topic = s.sanitizer.Clean(req.Topic)
	}

	title := record.Title
	if req.Title != "" {
		title = s.sanitizer.Clean(req.Title)
	}

	body := record.Body
	if req.Body != "" {
		body = s.sanitizer.Clean(req.Body)
	}

	if validation := s.validator.ValidateArticle(topic, title, body); len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	updated := *record
	updated.Topic = topic
	updated.Title = title
	updated.Body = body

	if err := s.articleRepo.Update(&updated); err != nil {
		return nil, models.ErrorQuery{Message: "Error updating article", Err: err}
	}

	return &updated, nil
}

func (s *articleService) Delete(id uint) error {
	if err := s.articleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "Record not found!"}
		}
		return models.ErrorQuery{Message: "Error deleting article", Err: err}
	}
	return nil
}

func (s *articleService) List(params models.ListParams) ([]models.Article, error) {
	var (
		articles []models.Article
		err      error
	)
	if params.Search != "" {
		articles, err = s.articleRepo.Search(params)
	} else {
		articles, err = s.articleRepo.List(params)
	}
	if err != nil {
		return nil, models.ErrorQuery{Message: "Error getting articles", Err: err}
	}
	return articles, nil
}

// CommentsForArticle fetches the article and its comments concurrently and
// joins before deciding the outcome. A missing article is a not-found; an
// article with no comments is an empty, successful result.
func (s *articleService) CommentsForArticle(id uint) ([]models.Comment, error) {
	var (
		wg         sync.WaitGroup
		articleErr error
		comments   []models.Comment
		listErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, articleErr = s.articleRepo.GetByID(id)
	}()
	go func() {
		defer wg.Done()
		comments, listErr = s.commentRepo.ListByArticle(id)
	}()
	wg.Wait()

	if articleErr != nil {
		if errors.Is(articleErr, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, models.ErrorQuery{Message: "Error finding article", Code: 500, Err: articleErr}
	}

	if listErr != nil {
		return nil, models.ErrorQuery{Message: "Error finding comments", Err: listErr}
	}

	return comments, nil
}

func (s *articleService) LikesForArticle(id uint) ([]models.ArticleLike, error) {
	var (
		wg         sync.WaitGroup
		articleErr error
		likes      []models.ArticleLike
		listErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, articleErr = s.articleRepo.GetByID(id)
	}()
	go func() {
		defer wg.Done()
		likes, listErr = s.likeRepo.ListByArticle(id)
	}()
	wg.Wait()

	if articleErr != nil {
		if errors.Is(articleErr, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Article not found"}
		}
		return nil, models.ErrorQuery{Message: "Error finding article", Code: 500, Err: articleErr}
	}

	if listErr != nil {
		return nil, models.ErrorQuery{Message: "Error finding likes", Err: listErr}
	}

	return likes, nil
}

// Like upserts the caller's vote. Voting again with the same value is a
// no-op; the opposite value overwrites the same row.
func (s *articleService) Like(userID, articleID uint, isLike bool) (*models.ArticleLike, error) {
	like := &models.ArticleLike{UserID: userID, ArticleID: articleID, IsLike: isLike}

	if err := s.likeRepo.UpsertArticleLike(like); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.ErrorNotFound{Message: "Record not found!"}
		}
		return nil, models.ErrorQuery{Message: "Error posting like/dislike", Err: err}
	}

	return like, nil
}
