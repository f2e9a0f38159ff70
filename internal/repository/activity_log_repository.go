package repository

import (
	"github.com/haritzismaildev/smart-learning-sub001/internal/model"

	"gorm.io/gorm"
)

type ActivityLogRepository struct {
	DB *gorm.DB
}

func NewActivityLogRepository(db *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{DB: db}
}

func (r *ActivityLogRepository) Create(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}
