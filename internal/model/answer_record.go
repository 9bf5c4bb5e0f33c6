package model

import (
	"time"

	"gorm.io/gorm"
)

// AnswerRecord is one row of a persisted attempt: the user's answer to a
// single question. Unanswered questions are stored with a NULL UserAnswer.
type AnswerRecord struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	UserID        uint           `json:"user_id" gorm:"not null;index:idx_answer_records_user_tryout"`
	TryoutID      uint           `json:"tryout_id" gorm:"not null;index:idx_answer_records_user_tryout"`
	QuestionID    uint           `json:"question_id" gorm:"not null;index"`
	Question      Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer    *string        `json:"user_answer"`
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"`
	AttemptNumber int            `json:"attempt_number" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
