package model

import (
	"time"

	"gorm.io/gorm"
)

type Tryout struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Name            string         `json:"name" gorm:"not null"`
	ExamCategory    string         `json:"exam_category,omitempty"`
	TotalQuestions  int            `json:"total_questions"`
	DurationMinutes float64        `json:"duration_minutes"`
	Questions       []Question     `json:"questions,omitempty" gorm:"foreignKey:TryoutID"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
