package service

import (
	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"
)

type AttemptService struct {
	Attempts AttemptStore
	Sessions SessionStore
	Authz    *AuthzService
}

func NewAttemptService(attempts AttemptStore, sessions SessionStore, authz *AuthzService) *AttemptService {
	return &AttemptService{
		Attempts: attempts,
		Sessions: sessions,
		Authz:    authz,
	}
}

type RecordAttemptRequest struct {
	SessionID        uint   `json:"sessionId" binding:"required"`
	QuestionType     string `json:"questionType"`
	QuestionText     string `json:"questionText" binding:"required"`
	CorrectAnswer    string `json:"correctAnswer"`
	UserAnswer       string `json:"userAnswer"`
	IsCorrect        bool   `json:"isCorrect"`
	DifficultyLevel  int    `json:"difficultyLevel"`
	PointsEarned     int    `json:"pointsEarned"`
	TimeTakenSeconds int    `json:"timeTakenSeconds"`
	HintUsed         bool   `json:"hintUsed"`
}

// RecordAttempt appends one answered question. Correctness and points come
// from the caller and are stored as submitted. The session must exist but
// may already be closed; late writes after a close are accepted.
func (s *AttemptService) RecordAttempt(requesterID uint, req RecordAttemptRequest) (*model.QuestionAttempt, error) {
	session, err := s.Sessions.FindByID(req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != requesterID {
		return nil, util.ErrPermissionDenied
	}

	difficulty := req.DifficultyLevel
	if difficulty == 0 {
		difficulty = 1
	}

	attempt := &model.QuestionAttempt{
		SessionID:        session.ID,
		UserID:           session.UserID,
		Subject:          session.Subject,
		QuestionType:     req.QuestionType,
		QuestionText:     req.QuestionText,
		CorrectAnswer:    req.CorrectAnswer,
		UserAnswer:       req.UserAnswer,
		IsCorrect:        req.IsCorrect,
		DifficultyLevel:  difficulty,
		PointsEarned:     req.PointsEarned,
		TimeTakenSeconds: req.TimeTakenSeconds,
		HintUsed:         req.HintUsed,
	}

	if err := s.Attempts.Create(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *AttemptService) ListAttempts(requesterID uint, role model.UserRole, sessionID uint) ([]model.QuestionAttempt, error) {
	session, err := s.Sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Authz.Authorize(requesterID, role, session.UserID); err != nil {
		return nil, err
	}
	return s.Attempts.ListBySession(sessionID)
}
