package repository

import (
	"errors"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"

	"gorm.io/gorm"
)

// UserRepository is read-only: accounts are owned by the account service.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindChildren(parentID uint) ([]model.User, error) {
	var children []model.User
	err := r.DB.Where("parent_id = ? AND role = ?", parentID, model.Child).
		Order("id").
		Find(&children).Error
	return children, err
}
