package service

import (
	"sort"
	"sync"
	"time"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"
)

// In-memory stand-ins for the gorm repositories. They keep the same
// semantics the real stores guarantee: Close is atomic under the mutex,
// listings are most-recent-first, a missing progress row reads as nil.

type progressKey struct {
	userID  uint
	subject model.Subject
}

type fakeProgressStore struct {
	mu     sync.Mutex
	rows   map[progressKey]*model.SubjectProgress
	errFor map[uint]error
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{
		rows:   make(map[progressKey]*model.SubjectProgress),
		errFor: make(map[uint]error),
	}
}

func (f *fakeProgressStore) FindByUserAndSubject(userID uint, subject model.Subject) (*model.SubjectProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errFor[userID]; err != nil {
		return nil, err
	}
	row, ok := f.rows[progressKey{userID, subject}]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeProgressStore) ListByUser(userID uint) ([]model.SubjectProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errFor[userID]; err != nil {
		return nil, err
	}
	var rows []model.SubjectProgress
	for key, row := range f.rows {
		if key.userID == userID {
			rows = append(rows, *row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Subject < rows[j].Subject })
	return rows, nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	nextID   uint
	sessions map[uint]*model.LearningSession
	progress *fakeProgressStore
	errFor   map[uint]error
}

func newFakeSessionStore(progress *fakeProgressStore) *fakeSessionStore {
	return &fakeSessionStore{
		sessions: make(map[uint]*model.LearningSession),
		progress: progress,
		errFor:   make(map[uint]error),
	}
}

func (f *fakeSessionStore) Create(session *model.LearningSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	session.ID = f.nextID
	session.CreatedAt = time.Now()
	cp := *session
	f.sessions[session.ID] = &cp
	return nil
}

func (f *fakeSessionStore) FindByID(id uint) (*model.LearningSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (f *fakeSessionStore) ListByUser(userID uint, limit int) ([]model.LearningSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.errFor[userID]; err != nil {
		return nil, err
	}
	var sessions []model.LearningSession
	for _, session := range f.sessions {
		if session.UserID == userID {
			sessions = append(sessions, *session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (f *fakeSessionStore) ListRecent(page, limit int) ([]model.LearningSession, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sessions []model.LearningSession
	for _, session := range f.sessions {
		sessions = append(sessions, *session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	total := int64(len(sessions))

	start := (page - 1) * limit
	if start >= len(sessions) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(sessions) {
		end = len(sessions)
	}
	return sessions[start:end], total, nil
}

func (f *fakeSessionStore) Close(sessionID uint, totals model.SessionTotals) (*model.LearningSession, *model.SubjectProgress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, nil, util.ErrSessionNotFound
	}
	if session.Closed() {
		return nil, nil, util.ErrSessionAlreadyClosed
	}

	now := time.Now()
	session.EndedAt = &now
	session.TotalQuestions = totals.TotalQuestions
	session.CorrectAnswers = totals.CorrectAnswers
	session.TotalPoints = totals.TotalPoints
	session.DurationSeconds = totals.DurationSeconds

	f.progress.mu.Lock()
	key := progressKey{session.UserID, session.Subject}
	row, ok := f.progress.rows[key]
	if !ok {
		row = &model.SubjectProgress{UserID: session.UserID, Subject: session.Subject}
		f.progress.rows[key] = row
	}
	row.ApplyClose(totals.TotalPoints, totals.CorrectAnswers, totals.TotalQuestions)
	progressCopy := *row
	f.progress.mu.Unlock()

	sessionCopy := *session
	return &sessionCopy, &progressCopy, nil
}

type fakeAttemptStore struct {
	mu       sync.Mutex
	nextID   uint
	attempts []*model.QuestionAttempt
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{}
}

func (f *fakeAttemptStore) Create(attempt *model.QuestionAttempt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	attempt.ID = f.nextID
	attempt.CreatedAt = time.Now()
	cp := *attempt
	f.attempts = append(f.attempts, &cp)
	return nil
}

func (f *fakeAttemptStore) ListBySession(sessionID uint) ([]model.QuestionAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var attempts []model.QuestionAttempt
	for _, attempt := range f.attempts {
		if attempt.SessionID == sessionID {
			attempts = append(attempts, *attempt)
		}
	}
	return attempts, nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uint]*model.User
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[uint]*model.User)}
	for _, user := range users {
		f.users[user.ID] = user
	}
	return f
}

func (f *fakeUserStore) FindByID(id uint) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserStore) FindChildren(parentID uint) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var children []model.User
	for _, user := range f.users {
		if user.Role == model.Child && user.ParentID != nil && *user.ParentID == parentID {
			children = append(children, *user)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].ID < children[j].ID })
	return children, nil
}

// fakeActivityStore pushes writes to a channel so tests can wait for the
// fire-and-forget audit goroutine without sleeping.
type fakeActivityStore struct {
	entries chan *model.ActivityLog
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{entries: make(chan *model.ActivityLog, 16)}
}

func (f *fakeActivityStore) Create(entry *model.ActivityLog) error {
	f.entries <- entry
	return nil
}

func (f *fakeActivityStore) waitForEntry(timeout time.Duration) *model.ActivityLog {
	select {
	case entry := <-f.entries:
		return entry
	case <-time.After(timeout):
		return nil
	}
}
