package service

import (
	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
)

// Store interfaces consumed by the services. The gorm repositories in
// internal/repository implement them; tests substitute in-memory fakes.
// Construction happens once in internal/app, the services never reach for
// a connection themselves.

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindChildren(parentID uint) ([]model.User, error)
}

type SessionStore interface {
	Create(session *model.LearningSession) error
	FindByID(id uint) (*model.LearningSession, error)
	ListByUser(userID uint, limit int) ([]model.LearningSession, error)
	ListRecent(page, limit int) ([]model.LearningSession, int64, error)
	// Close transitions the session to closed and applies its totals to the
	// subject progress row atomically.
	Close(sessionID uint, totals model.SessionTotals) (*model.LearningSession, *model.SubjectProgress, error)
}

type AttemptStore interface {
	Create(attempt *model.QuestionAttempt) error
	ListBySession(sessionID uint) ([]model.QuestionAttempt, error)
}

type ProgressStore interface {
	FindByUserAndSubject(userID uint, subject model.Subject) (*model.SubjectProgress, error)
	ListByUser(userID uint) ([]model.SubjectProgress, error)
}

type ActivityStore interface {
	Create(entry *model.ActivityLog) error
}
