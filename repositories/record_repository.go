package repositories

import (
	"errors"

	"forum-api/models"

	"gorm.io/gorm"
)

// RecordKind names a table the authorization chain may load records from.
// The set is closed: anything outside it is rejected before touching storage.
type RecordKind string

const (
	RecordUsers    RecordKind = "users"
	RecordTopics   RecordKind = "topics"
	RecordArticles RecordKind = "articles"
	RecordComments RecordKind = "comments"
)

// ErrUnknownRecordKind is returned for a kind outside the closed set. It
// guards against a mistyped route registration.
var ErrUnknownRecordKind = errors.New("unknown record kind")

// Record is the subject row loaded for ownership checks. OwnerID is the id of
// the user the record belongs to; for user records it is the user's own id,
// for topics there is no owner.
type Record struct {
	ID      uint
	OwnerID uint
	Item    interface{}
}

type RecordRepository interface {
	Load(kind RecordKind, id uint) (*Record, error)
}

type recordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Load(kind RecordKind, id uint) (*Record, error) {
	switch kind {
	case RecordUsers:
		var user models.User
		if err := r.db.First(&user, id).Error; err != nil {
			return nil, err
		}
		return &Record{ID: user.ID, OwnerID: user.ID, Item: &user}, nil
	case RecordTopics:
		var topic models.Topic
		if err := r.db.First(&topic, id).Error; err != nil {
			return nil, err
		}
		return &Record{ID: topic.ID, Item: &topic}, nil
	case RecordArticles:
		var article models.Article
		if err := r.db.First(&article, id).Error; err != nil {
			return nil, err
		}
		return &Record{ID: article.ID, OwnerID: article.UserID, Item: &article}, nil
	case RecordComments:
		var comment models.Comment
		if err := r.db.First(&comment, id).Error; err != nil {
			return nil, err
		}
		return &Record{ID: comment.ID, OwnerID: comment.UserID, Item: &comment}, nil
	default:
		return nil, ErrUnknownRecordKind
	}
}
