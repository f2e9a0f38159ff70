package model

import (
	"time"
)

type Subject string

const (
	SubjectMath    Subject = "math"
	SubjectEnglish Subject = "english"
)

func (s Subject) Valid() bool {
	return s == SubjectMath || s == SubjectEnglish
}

// LearningSession is one timed play-through of questions for a subject and
// topic. It is created open (EndedAt nil, counters zero), closed exactly
// once with the caller's final totals, and immutable after that. Sessions
// are never deleted.
type LearningSession struct {
	BaseModel
	UserID          uint       `gorm:"index;not null" json:"userId"`
	Subject         Subject    `gorm:"type:enum('math','english');not null" json:"subject"`
	Topic           string     `gorm:"size:100;not null" json:"topic"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt"`
	TotalQuestions  int        `gorm:"default:0" json:"totalQuestions"`
	CorrectAnswers  int        `gorm:"default:0" json:"correctAnswers"`
	TotalPoints     int        `gorm:"default:0" json:"totalPoints"`
	DurationSeconds int        `gorm:"default:0" json:"durationSeconds"`
}

func (LearningSession) TableName() string {
	return "learning_sessions"
}

func (s *LearningSession) Closed() bool {
	return s.EndedAt != nil
}

// SessionTotals are the caller-submitted final counters for a whole
// session. They replace the session's counters, they do not increment.
type SessionTotals struct {
	TotalQuestions  int `json:"totalQuestions"`
	CorrectAnswers  int `json:"correctAnswers"`
	TotalPoints     int `json:"totalPoints"`
	DurationSeconds int `json:"durationSeconds"`
}

func (t SessionTotals) Negative() bool {
	return t.TotalQuestions < 0 || t.CorrectAnswers < 0 || t.TotalPoints < 0 || t.DurationSeconds < 0
}
