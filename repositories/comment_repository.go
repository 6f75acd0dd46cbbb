package repositories

import (
	"forum-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
	ListByArticle(articleID uint) ([]models.Comment, error)
	ListByUser(userID uint) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Save(comment).Error
}

func (r *commentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) ListByArticle(articleID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("articleid = ?", articleID).Order("id").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListByUser(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("userid = ?", userID).Order("id").Find(&comments).Error
	return comments, err
}
