package repositories

import (
	"forum-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	Update(article *models.Article) error
	Delete(id uint) error
	List(params models.ListParams) ([]models.Article, error)
	Search(params models.ListParams) ([]models.Article, error)
	ListByUser(userID uint) ([]models.Article, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *articleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) List(params models.ListParams) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Order("id").Offset(params.Offset).Limit(params.Limit).Find(&articles).Error
	return articles, err
}

// Search matches the user's query against title and body through the
// full-text index. The column pair is fixed here, never caller-supplied.
func (r *articleRepository) Search(params models.ListParams) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.
		Where("to_tsvector(title || ' ' || article) @@ plainto_tsquery(?)", params.Search).
		Order("id").Offset(params.Offset).Limit(params.Limit).
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) ListByUser(userID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("userid = ?", userID).Order("id").Find(&articles).Error
	return articles, err
}
