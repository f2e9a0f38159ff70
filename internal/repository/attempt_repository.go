package repository

import (
	"github.com/haritzismaildev/smart-learning-sub001/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.QuestionAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) ListBySession(sessionID uint) ([]model.QuestionAttempt, error) {
	var attempts []model.QuestionAttempt
	err := r.DB.Where("session_id = ?", sessionID).
		Order("id").
		Find(&attempts).Error
	return attempts, err
}
