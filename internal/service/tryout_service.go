package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/dto"
	"github.com/taktix-app/tryout-engine/internal/repository"
	"gorm.io/gorm"
)

type TryoutService interface {
	GetAllTryouts() ([]dto.TryoutSummaryDTO, error)
	GetTryoutDetails(tryoutID uint) (*dto.TryoutResponseDTO, error)
	GetAnswerKey(tryoutID uint) ([]dto.AnswerKeyItemDTO, error)
}

type tryoutService struct {
	tryoutRepo   repository.TryoutRepository
	questionRepo repository.QuestionRepository
}

func NewTryoutService(tryoutRepo repository.TryoutRepository, questionRepo repository.QuestionRepository) TryoutService {
	return &tryoutService{tryoutRepo: tryoutRepo, questionRepo: questionRepo}
}

func (s *tryoutService) GetAllTryouts() ([]dto.TryoutSummaryDTO, error) {
	tryoutsWithCount, err := s.tryoutRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tryouts with question count from repository")
		return nil, fmt.Errorf("error fetching tryouts: %w", err)
	}

	var dtos []dto.TryoutSummaryDTO
	for _, twc := range tryoutsWithCount {
		dtos = append(dtos, dto.TryoutSummaryDTO{
			ID:              twc.Tryout.ID,
			Name:            twc.Tryout.Name,
			ExamCategory:    twc.Tryout.ExamCategory,
			TotalQuestions:  twc.Tryout.TotalQuestions,
			DurationMinutes: twc.Tryout.DurationMinutes,
			QuestionCount:   twc.QuestionCount,
			CreatedAt:       twc.Tryout.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *tryoutService) GetTryoutDetails(tryoutID uint) (*dto.TryoutResponseDTO, error) {
	tryout, err := s.tryoutRepo.FindByID(tryoutID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("tryout %d not found", tryoutID)
		}
		log.Error().Err(err).Uint("tryoutID", tryoutID).Msg("Failed to get tryout details from repository")
		return nil, fmt.Errorf("error fetching tryout %d: %w", tryoutID, err)
	}

	var resp dto.TryoutResponseDTO
	if err := copier.Copy(&resp, tryout); err != nil {
		log.Error().Err(err).Msg("Failed to copy Tryout model to TryoutResponseDTO")
		return nil, fmt.Errorf("error preparing tryout details response: %w", err)
	}
	return &resp, nil
}

// GetAnswerKey returns the full question set with correct answers, id
// ascending, for the post-attempt answer key view.
func (s *tryoutService) GetAnswerKey(tryoutID uint) ([]dto.AnswerKeyItemDTO, error) {
	questions, err := s.questionRepo.FindByTryoutID(tryoutID)
	if err != nil {
		log.Error().Err(err).Uint("tryoutID", tryoutID).Msg("Failed to load questions for answer key")
		return nil, fmt.Errorf("error fetching answer key for tryout %d: %w", tryoutID, err)
	}
	if len(questions) == 0 {
		return nil, apperr.NotFound("no questions found for tryout %d", tryoutID)
	}

	items := make([]dto.AnswerKeyItemDTO, len(questions))
	for i, q := range questions {
		copier.Copy(&items[i], &q)
	}
	return items, nil
}
