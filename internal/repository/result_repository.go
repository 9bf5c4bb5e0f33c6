package repository

import (
	"github.com/taktix-app/tryout-engine/internal/model"
	"gorm.io/gorm"
)

// ResultRepository reads persisted answer rows. Writes happen inside the
// submission transaction in the service layer so an attempt is recorded
// all-or-nothing.
type ResultRepository interface {
	MaxAttemptNumber(userID, tryoutID uint) (int, error)
	FindByAttempt(userID, tryoutID uint, attemptNumber int) ([]model.AnswerRecord, error)
	FindByUserAndTryout(userID, tryoutID uint) ([]model.AnswerRecord, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// MaxAttemptNumber returns the highest recorded attempt number for the
// user+tryout pair, or 0 when no attempt exists yet.
func (r *resultRepository) MaxAttemptNumber(userID, tryoutID uint) (int, error) {
	var max *int
	err := r.db.Model(&model.AnswerRecord{}).
		Where("user_id = ? AND tryout_id = ?", userID, tryoutID).
		Select("MAX(attempt_number)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *resultRepository) FindByAttempt(userID, tryoutID uint, attemptNumber int) ([]model.AnswerRecord, error) {
	var records []model.AnswerRecord
	err := r.db.
		Where("user_id = ? AND tryout_id = ? AND attempt_number = ?", userID, tryoutID, attemptNumber).
		Order("question_id ASC").
		Find(&records).Error
	return records, err
}

func (r *resultRepository) FindByUserAndTryout(userID, tryoutID uint) ([]model.AnswerRecord, error) {
	var records []model.AnswerRecord
	err := r.db.
		Where("user_id = ? AND tryout_id = ?", userID, tryoutID).
		Order("attempt_number ASC, question_id ASC").
		Find(&records).Error
	return records, err
}
