package service

import (
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/exam"
	"github.com/taktix-app/tryout-engine/internal/model"
	"gorm.io/gorm"
)

// SubmissionService scores a finished attempt and records it durably. It is
// the exam.Submitter the runner calls from its Submitting state.
type SubmissionService interface {
	exam.Submitter
}

type submissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) SubmissionService {
	return &submissionService{db: db}
}

// Submit writes one answer row per question (unanswered as NULL) and one
// score row, tagged with the next attempt number for the user+tryout pair.
// Everything happens in a single transaction: the attempt number is read
// inside it and a failure rolls the whole attempt back, so a retry can
// neither skip a number nor observe half an attempt.
func (s *submissionService) Submit(req exam.SubmitRequest) (*exam.SubmitResult, error) {
	summary := exam.Score(req.Questions, req.Answers, req.Difficulties)

	categoryJSON, err := json.Marshal(summary.CategoryScores)
	if err != nil {
		return nil, apperr.Storage("failed to encode category scores", err)
	}

	attemptNumber := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var max *int
		if err := tx.Model(&model.AnswerRecord{}).
			Where("user_id = ? AND tryout_id = ?", req.UserID, req.TryoutID).
			Select("MAX(attempt_number)").
			Scan(&max).Error; err != nil {
			return err
		}
		attemptNumber = nextAttemptNumber(max)

		rows := buildAnswerRows(req, attemptNumber)
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		return tx.Create(&model.ScoreRecord{
			UserID:         req.UserID,
			TryoutID:       req.TryoutID,
			AttemptNumber:  attemptNumber,
			OverallScore:   summary.OverallScore,
			CategoryScores: categoryJSON,
		}).Error
	})
	if err != nil {
		log.Error().Err(err).
			Uint("user_id", req.UserID).
			Uint("tryout_id", req.TryoutID).
			Msg("Failed to record attempt, nothing was persisted")
		return nil, apperr.Storage("failed to save attempt", err)
	}

	log.Info().
		Uint("user_id", req.UserID).
		Uint("tryout_id", req.TryoutID).
		Int("attempt_number", attemptNumber).
		Int("overall_score", summary.OverallScore).
		Msg("Attempt recorded")

	return &exam.SubmitResult{AttemptNumber: attemptNumber, Summary: summary}, nil
}

// nextAttemptNumber is max prior attempt + 1, or 1 when no attempt exists.
func nextAttemptNumber(max *int) int {
	if max == nil {
		return 1
	}
	return *max + 1
}

// buildAnswerRows produces one record per question of the tryout, recording
// unanswered questions with a nil UserAnswer.
func buildAnswerRows(req exam.SubmitRequest, attemptNumber int) []model.AnswerRecord {
	rows := make([]model.AnswerRecord, len(req.Questions))
	for i, q := range req.Questions {
		var userAnswer *string
		if opt, ok := req.Answers[q.ID]; ok {
			userAnswer = &opt
		}
		rows[i] = model.AnswerRecord{
			UserID:        req.UserID,
			TryoutID:      req.TryoutID,
			QuestionID:    q.ID,
			UserAnswer:    userAnswer,
			CorrectAnswer: q.CorrectAnswer,
			AttemptNumber: attemptNumber,
		}
	}
	return rows
}
