package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"
)

const (
	defaultSessionLimit = 20
	maxSessionLimit     = 100
)

type SessionService struct {
	Sessions SessionStore
	Authz    *AuthzService
	Audit    *AuditService
}

func NewSessionService(sessions SessionStore, authz *AuthzService, audit *AuditService) *SessionService {
	return &SessionService{
		Sessions: sessions,
		Authz:    authz,
		Audit:    audit,
	}
}

type OpenSessionRequest struct {
	Subject model.Subject `json:"subject"`
	Topic   string        `json:"topic"`
}

// OpenSession starts a play session for the requester. Several sessions
// may be open at once for the same user; resuming apps rely on that.
func (s *SessionService) OpenSession(userID uint, req OpenSessionRequest) (*model.LearningSession, error) {
	if !req.Subject.Valid() {
		return nil, util.ErrUnsupportedSubject
	}
	if strings.TrimSpace(req.Topic) == "" {
		return nil, util.ErrTopicRequired
	}

	session := &model.LearningSession{
		UserID:    userID,
		Subject:   req.Subject,
		Topic:     req.Topic,
		StartedAt: time.Now(),
	}

	if err := s.Sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// CloseSession stores the caller's final totals verbatim and folds them
// into the subject progress row. Only the session owner may close it;
// parents have read access to their children's data, never write access.
func (s *SessionService) CloseSession(requesterID uint, sessionID uint, totals model.SessionTotals) (*model.LearningSession, *model.SubjectProgress, error) {
	if totals.Negative() {
		return nil, nil, util.ErrNegativeCounters
	}

	session, err := s.Sessions.FindByID(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.UserID != requesterID {
		return nil, nil, util.ErrPermissionDenied
	}

	session, progress, err := s.Sessions.Close(sessionID, totals)
	if err != nil {
		return nil, nil, err
	}

	s.Audit.Record(session.UserID, "session_closed", "learning",
		fmt.Sprintf("session %d closed: %s/%s, %d/%d correct, %d points",
			session.ID, session.Subject, session.Topic,
			totals.CorrectAnswers, totals.TotalQuestions, totals.TotalPoints))

	return session, progress, nil
}

func (s *SessionService) GetSession(requesterID uint, role model.UserRole, sessionID uint) (*model.LearningSession, error) {
	session, err := s.Sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Authz.Authorize(requesterID, role, session.UserID); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) ListSessions(requesterID uint, role model.UserRole, targetUserID uint, limit int) ([]model.LearningSession, error) {
	if err := s.Authz.Authorize(requesterID, role, targetUserID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultSessionLimit
	}
	if limit > maxSessionLimit {
		limit = maxSessionLimit
	}
	return s.Sessions.ListByUser(targetUserID, limit)
}

// ListRecentSessions backs the admin listing; the role gate lives in the
// route middleware. The privileged read is audited.
func (s *SessionService) ListRecentSessions(actorID uint, page, limit int) ([]model.LearningSession, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > maxSessionLimit {
		limit = defaultSessionLimit
	}

	sessions, total, err := s.Sessions.ListRecent(page, limit)
	if err != nil {
		return nil, 0, err
	}

	s.Audit.Record(actorID, "sessions_listed", "admin",
		fmt.Sprintf("listed sessions page %d limit %d", page, limit))

	return sessions, total, nil
}
