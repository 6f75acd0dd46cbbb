package repositories

import (
	"forum-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	UpsertArticleLike(like *models.ArticleLike) error
	ListByArticle(articleID uint) ([]models.ArticleLike, error)
	UpsertCommentLike(like *models.CommentLike) error
	ListByComment(commentID uint) ([]models.CommentLike, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// UpsertArticleLike stores a vote, overwriting any prior vote by the same
// user on the same article. A foreign-key violation means the article does
// not exist and surfaces as gorm.ErrForeignKeyViolated.
func (r *likeRepository) UpsertArticleLike(like *models.ArticleLike) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "userid"}, {Name: "articleid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"islike": like.IsLike}),
	}).Create(like).Error
}

func (r *likeRepository) ListByArticle(articleID uint) ([]models.ArticleLike, error) {
	var likes []models.ArticleLike
	err := r.db.Where("articleid = ?", articleID).Order("userid").Find(&likes).Error
	return likes, err
}

func (r *likeRepository) UpsertCommentLike(like *models.CommentLike) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "userid"}, {Name: "commentid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"islike": like.IsLike}),
	}).Create(like).Error
}

func (r *likeRepository) ListByComment(commentID uint) ([]models.CommentLike, error) {
	var likes []models.CommentLike
	err := r.db.Where("commentid = ?", commentID).Order("userid").Find(&likes).Error
	return likes, err
}
