package repository

import (
	"errors"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"

	"gorm.io/gorm"
)

// ProgressRepository is the read side of subject progress. Writes happen
// only inside SessionRepository.Close, as part of closing a session.
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindByUserAndSubject returns (nil, nil) when no row exists: "no progress
// yet" is a valid state, not an error.
func (r *ProgressRepository) FindByUserAndSubject(userID uint, subject model.Subject) (*model.SubjectProgress, error) {
	var progress model.SubjectProgress
	err := r.DB.Where("user_id = ? AND subject = ?", userID, subject).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.SubjectProgress, error) {
	var rows []model.SubjectProgress
	err := r.DB.Where("user_id = ?", userID).
		Order("subject").
		Find(&rows).Error
	return rows, err
}
