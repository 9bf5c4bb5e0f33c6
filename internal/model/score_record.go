package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScoreRecord is the aggregated score of one attempt. CategoryScores holds
// the subtest-name -> score map as a JSON column.
type ScoreRecord struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index:idx_score_records_user_tryout"`
	TryoutID       uint           `json:"tryout_id" gorm:"not null;index:idx_score_records_user_tryout"`
	AttemptNumber  int            `json:"attempt_number" gorm:"not null"`
	OverallScore   int            `json:"overall_score" gorm:"not null"`
	CategoryScores datatypes.JSON `json:"category_scores" gorm:"not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
