package repositories

import (
	"forum-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(params models.ListParams) ([]models.User, error)
	Search(params models.ListParams) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns every row matching the username so the caller can
// verify the exactly-one invariant itself.
func (r *userRepository) GetByUsername(username string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("username = ?", username).Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	result := r.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepository) List(params models.ListParams) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Offset(params.Offset).Limit(params.Limit).Find(&users).Error
	return users, err
}

func (r *userRepository) Search(params models.ListParams) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("to_tsvector(username || ' ' || name) @@ plainto_tsquery(?)", params.Search).
		Order("id").Offset(params.Offset).Limit(params.Limit).
		Find(&users).Error
	return users, err
}
