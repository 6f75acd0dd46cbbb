package services

import (
	"errors"

	"forum-api/helper"
	"forum-api/models"
	"forum-api/repositories"

	"gorm.io/gorm"
)

type TopicService interface {
	Create(req models.TopicRequest) (*models.Topic, error)
	Patch(id uint, req models.TopicRequest) (*models.Topic, error)
	Delete(id uint) (*models.Topic, error)
	List(params models.ListParams) ([]models.Topic, error)
}

type topicService struct {
	topicRepo repositories.TopicRepository
	sanitizer *helper.Sanitizer
	validator *helper.Validator
}

func NewTopicService(topicRepo repositories.TopicRepository, sanitizer *helper.Sanitizer, validator *helper.Validator) TopicService {
	return &topicService{
		topicRepo: topicRepo,
		sanitizer: sanitizer,
		validator: validator,
	}
}

func (s *topicService) Create(req models.TopicRequest) (*models.Topic, error) {
	if validation := s.validator.ValidateTopic(req.Topic); len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	topic := &models.Topic{Name: s.sanitizer.Clean(req.Topic)}
	if err := s.topicRepo.Create(topic); err != nil {
		return nil, models.ErrorQuery{Message: "Error creating topic", Err: err}
	}

	return topic, nil
}

func (s *topicService) Patch(id uint, req models.TopicRequest) (*models.Topic, error) {
	if validation := s.validator.ValidateTopic(req.Topic); len(validation) > 0 {
		return nil, models.ErrorValidation{Message: "Validation error", Validation: validation}
	}

	topic, err := s.topicRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Record not found"}
		}
		return nil, models.ErrorQuery{Message: "Error updating topic", Err: err}
	}

	topic.Name = s.sanitizer.Clean(req.Topic)
	if err := s.topicRepo.Update(topic); err != nil {
		return nil, models.ErrorQuery{Message: "Error updating topic", Err: err}
	}

	return topic, nil
}

// Delete removes a topic and returns the deleted row.
func (s *topicService) Delete(id uint) (*models.Topic, error) {
	topic, err := s.topicRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Record not found!"}
		}
		return nil, models.ErrorQuery{Message: "Error deleting topic", Err: err}
	}

	if err := s.topicRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "Record not found!"}
		}
		return nil, models.ErrorQuery{Message: "Error deleting topic", Err: err}
	}

	return topic, nil
}

func (s *topicService) List(params models.ListParams) ([]models.Topic, error) {
	topics, err := s.topicRepo.List(params)
	if err != nil {
		return nil, models.ErrorQuery{Message: "Error getting topics", Err: err}
	}
	return topics, nil
}
