package repository

import (
	"errors"
	"time"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(session *model.LearningSession) error {
	return r.DB.Create(session).Error
}

func (r *SessionRepository) FindByID(id uint) (*model.LearningSession, error) {
	var session model.LearningSession
	err := r.DB.First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) ListByUser(userID uint, limit int) ([]model.LearningSession, error) {
	var sessions []model.LearningSession
	err := r.DB.Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) ListRecent(page, limit int) ([]model.LearningSession, int64, error) {
	var total int64
	if err := r.DB.Model(&model.LearningSession{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sessions []model.LearningSession
	err := r.DB.Order("started_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&sessions).Error
	return sessions, total, err
}

// Close marks the session ended and folds its totals into the subject
// progress row in one transaction. The session row is locked FOR UPDATE to
// guard against double close; the progress write is a single atomic upsert
// so concurrent closes for the same (user, subject) accumulate instead of
// losing an update or colliding on the unique key.
func (r *SessionRepository) Close(sessionID uint, totals model.SessionTotals) (*model.LearningSession, *model.SubjectProgress, error) {
	var session model.LearningSession
	var progress model.SubjectProgress

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&session, sessionID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		if err != nil {
			return err
		}

		if session.Closed() {
			return util.ErrSessionAlreadyClosed
		}

		now := time.Now()
		session.EndedAt = &now
		session.TotalQuestions = totals.TotalQuestions
		session.CorrectAnswers = totals.CorrectAnswers
		session.TotalPoints = totals.TotalPoints
		session.DurationSeconds = totals.DurationSeconds
		if err := tx.Save(&session).Error; err != nil {
			return err
		}

		// Upsert the progress row atomically. Two concurrent first closes
		// both take the insert path; ON DUPLICATE KEY folds the loser's
		// totals in instead of failing on the unique (user_id, subject) key.
		fresh := model.SubjectProgress{
			UserID:  session.UserID,
			Subject: session.Subject,
		}
		fresh.ApplyClose(totals.TotalPoints, totals.CorrectAnswers, totals.TotalQuestions)
		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "subject"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"points":          gorm.Expr("points + ?", totals.TotalPoints),
				"correct_count":   gorm.Expr("correct_count + ?", totals.CorrectAnswers),
				"attempted_count": gorm.Expr("attempted_count + ?", totals.TotalQuestions),
				"level":           totals.TotalPoints / 100,
				"updated_at":      now,
			}),
		}).Create(&fresh).Error
		if err != nil {
			return err
		}

		return tx.Where("user_id = ? AND subject = ?", session.UserID, session.Subject).
			First(&progress).Error
	})

	if err != nil {
		return nil, nil, err
	}
	return &session, &progress, nil
}
