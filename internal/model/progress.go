package model

// SubjectProgress is the cumulative per-subject standing of a user. One row
// per (user, subject), created on the first session close and upserted on
// every close after that. "No row yet" is a valid zero state, not an error.
type SubjectProgress struct {
	BaseModel
	UserID         uint    `gorm:"not null;uniqueIndex:idx_user_subject" json:"userId"`
	Subject        Subject `gorm:"type:enum('math','english');not null;uniqueIndex:idx_user_subject" json:"subject"`
	Level          int     `gorm:"default:0" json:"level"`
	Points         int     `gorm:"default:0" json:"points"`
	CorrectCount   int     `gorm:"default:0" json:"correctCount"`
	AttemptedCount int     `gorm:"default:0" json:"attemptedCount"`
}

func (SubjectProgress) TableName() string {
	return "subject_progress"
}

// ApplyClose folds one closed session into the row. Points and the two
// counters accumulate, but Level is recomputed from this session's points
// alone: level tracks the most recently closed session, not the cumulative
// total. That asymmetry matches the shipped behavior the apps were built
// against; change it together with the tests that pin it.
func (p *SubjectProgress) ApplyClose(totalPoints, correctAnswers, totalQuestions int) {
	p.Points += totalPoints
	p.CorrectCount += correctAnswers
	p.AttemptedCount += totalQuestions
	p.Level = totalPoints / 100
}
