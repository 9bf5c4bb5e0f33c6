package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	TryoutID     uint    `json:"tryout_id" gorm:"not null;index"`
	QuestionText string  `json:"question_text" gorm:"type:text;not null"`
	OptionA      string  `json:"option_a" gorm:"type:text;not null"`
	OptionB      string  `json:"option_b" gorm:"type:text;not null"`
	OptionC      string  `json:"option_c" gorm:"type:text;not null"`
	OptionD      string  `json:"option_d" gorm:"type:text;not null"`
	OptionE      *string `json:"option_e,omitempty" gorm:"type:text"`
	// Correct option label ("A".."E").
	CorrectAnswer string `json:"correct_answer" gorm:"not null"`
	// One of the seven fixed subtest names.
	TestCategory string `json:"test_category" gorm:"not null;index"`
	// Rasch item difficulty (b). Nullable; a substitute is drawn at
	// session start when absent.
	Difficulty *float64       `json:"difficulty,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
