package model

// QuestionAttempt is one answered question within a session. Rows are
// append-only; correctness and points are computed by the caller and
// trusted as submitted. Attempts may reference open or closed sessions.
type QuestionAttempt struct {
	BaseModel
	SessionID        uint    `gorm:"index;not null" json:"sessionId"`
	UserID           uint    `gorm:"index;not null" json:"userId"`
	Subject          Subject `gorm:"type:enum('math','english');not null" json:"subject"`
	QuestionType     string  `gorm:"size:50" json:"questionType"`
	QuestionText     string  `gorm:"type:text" json:"questionText"`
	CorrectAnswer    string  `gorm:"size:255" json:"correctAnswer"`
	UserAnswer       string  `gorm:"size:255" json:"userAnswer"`
	IsCorrect        bool    `gorm:"default:false" json:"isCorrect"`
	DifficultyLevel  int     `gorm:"default:1" json:"difficultyLevel"`
	PointsEarned     int     `gorm:"default:0" json:"pointsEarned"`
	TimeTakenSeconds int     `gorm:"default:0" json:"timeTakenSeconds"`
	HintUsed         bool    `gorm:"default:false" json:"hintUsed"`
}

func (QuestionAttempt) TableName() string {
	return "question_attempts"
}
