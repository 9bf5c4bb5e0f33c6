package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/dto"
	"github.com/taktix-app/tryout-engine/internal/model"
	"github.com/taktix-app/tryout-engine/internal/repository"
	"gorm.io/gorm"
)

// HistoryService serves the attempt history and score views over the
// persisted records of past attempts.
type HistoryService interface {
	GetAttemptHistory(userID, tryoutID uint) ([]dto.AttemptSummaryDTO, error)
	GetAttemptScore(userID, tryoutID uint, attemptNumber int) (*dto.AttemptScoreDTO, error)
}

type historyService struct {
	resultRepo   repository.ResultRepository
	scoreRepo    repository.ScoreRepository
	questionRepo repository.QuestionRepository
}

func NewHistoryService(
	resultRepo repository.ResultRepository,
	scoreRepo repository.ScoreRepository,
	questionRepo repository.QuestionRepository,
) HistoryService {
	return &historyService{resultRepo: resultRepo, scoreRepo: scoreRepo, questionRepo: questionRepo}
}

// GetAttemptHistory summarizes every attempt of a user on a tryout, newest
// first: correct/wrong/empty counts plus the classic raw score of 4 per
// correct answer and -1 per wrong one.
func (s *historyService) GetAttemptHistory(userID, tryoutID uint) ([]dto.AttemptSummaryDTO, error) {
	records, err := s.resultRepo.FindByUserAndTryout(userID, tryoutID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Uint("tryoutID", tryoutID).Msg("Failed to load attempt history")
		return nil, fmt.Errorf("error fetching attempt history: %w", err)
	}
	if len(records) == 0 {
		return []dto.AttemptSummaryDTO{}, nil
	}

	questions, err := s.questionRepo.FindByTryoutID(tryoutID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for history: %w", err)
	}
	totalQuestions := len(questions)

	byAttempt := make(map[int][]model.AnswerRecord)
	for _, rec := range records {
		byAttempt[rec.AttemptNumber] = append(byAttempt[rec.AttemptNumber], rec)
	}

	summaries := make([]dto.AttemptSummaryDTO, 0, len(byAttempt))
	for attemptNumber, rows := range byAttempt {
		summary := dto.AttemptSummaryDTO{
			AttemptNumber:  attemptNumber,
			TotalQuestions: totalQuestions,
		}
		for _, row := range rows {
			switch {
			case row.UserAnswer == nil:
				summary.Empty++
			case *row.UserAnswer == row.CorrectAnswer:
				summary.Correct++
			default:
				summary.Wrong++
			}
		}
		// Rows are one per question, but older attempts may predate
		// questions added later; count those as empty too.
		if missing := totalQuestions - len(rows); missing > 0 {
			summary.Empty += missing
		}
		summary.RawScore = summary.Correct*4 - summary.Wrong
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].AttemptNumber > summaries[j].AttemptNumber
	})
	return summaries, nil
}

// GetAttemptScore returns the stored score of one attempt together with the
// per-question results.
func (s *historyService) GetAttemptScore(userID, tryoutID uint, attemptNumber int) (*dto.AttemptScoreDTO, error) {
	record, err := s.scoreRepo.FindByAttempt(userID, tryoutID, attemptNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("no score found for tryout %d attempt %d", tryoutID, attemptNumber)
		}
		log.Error().Err(err).Uint("tryoutID", tryoutID).Int("attempt", attemptNumber).Msg("Failed to load score record")
		return nil, fmt.Errorf("error fetching score: %w", err)
	}

	var categoryScores map[string]int
	if err := json.Unmarshal(record.CategoryScores, &categoryScores); err != nil {
		return nil, fmt.Errorf("malformed category scores for attempt %d: %w", attemptNumber, err)
	}

	resp := &dto.AttemptScoreDTO{
		TryoutID:       tryoutID,
		AttemptNumber:  attemptNumber,
		OverallScore:   record.OverallScore,
		CategoryScores: categoryScores,
		CreatedAt:      record.CreatedAt,
	}

	rows, err := s.resultRepo.FindByAttempt(userID, tryoutID, attemptNumber)
	if err != nil {
		return nil, fmt.Errorf("error fetching answer rows: %w", err)
	}

	questions, err := s.questionRepo.FindByTryoutID(tryoutID)
	if err != nil {
		return nil, fmt.Errorf("error fetching questions for score detail: %w", err)
	}
	questionMap := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	for _, row := range rows {
		result := dto.QuestionResultDTO{
			QuestionID:    row.QuestionID,
			UserAnswer:    row.UserAnswer,
			CorrectAnswer: row.CorrectAnswer,
			IsCorrect:     row.UserAnswer != nil && *row.UserAnswer == row.CorrectAnswer,
		}
		if q, ok := questionMap[row.QuestionID]; ok {
			result.QuestionText = q.QuestionText
			result.TestCategory = q.TestCategory
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}
