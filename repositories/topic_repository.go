package repositories

import (
	"forum-api/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	Create(topic *models.Topic) error
	GetByID(id uint) (*models.Topic, error)
	ExistsByName(name string) (bool, error)
	Update(topic *models.Topic) error
	Delete(id uint) error
	List(params models.ListParams) ([]models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(topic *models.Topic) error {
	return r.db.Create(topic).Error
}

func (r *topicRepository) GetByID(id uint) (*models.Topic, error) {
	var topic models.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Topic{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *topicRepository) Update(topic *models.Topic) error {
	return r.db.Save(topic).Error
}

func (r *topicRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Topic{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *topicRepository) List(params models.ListParams) ([]models.Topic, error) {
	var topics []models.Topic
	err := r.db.Order("id").Offset(params.Offset).Limit(params.Limit).Find(&topics).Error
	return topics, err
}
