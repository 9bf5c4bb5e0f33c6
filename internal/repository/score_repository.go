package repository

import (
	"github.com/taktix-app/tryout-engine/internal/model"
	"gorm.io/gorm"
)

type ScoreRepository interface {
	FindByAttempt(userID, tryoutID uint, attemptNumber int) (*model.ScoreRecord, error)
	FindAllByUserAndTryout(userID, tryoutID uint) ([]model.ScoreRecord, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) FindByAttempt(userID, tryoutID uint, attemptNumber int) (*model.ScoreRecord, error) {
	var record model.ScoreRecord
	err := r.db.
		Where("user_id = ? AND tryout_id = ? AND attempt_number = ?", userID, tryoutID, attemptNumber).
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *scoreRepository) FindAllByUserAndTryout(userID, tryoutID uint) ([]model.ScoreRecord, error) {
	var records []model.ScoreRecord
	err := r.db.
		Where("user_id = ? AND tryout_id = ?", userID, tryoutID).
		Order("attempt_number DESC").
		Find(&records).Error
	return records, err
}
