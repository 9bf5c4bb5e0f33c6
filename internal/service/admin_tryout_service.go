package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/taktix-app/tryout-engine/internal/apperr"
	"github.com/taktix-app/tryout-engine/internal/dto"
	"github.com/taktix-app/tryout-engine/internal/exam"
	"github.com/taktix-app/tryout-engine/internal/model"
	"github.com/taktix-app/tryout-engine/internal/repository"
)

type AdminTryoutService interface {
	CreateTryout(req dto.TryoutCreateDTO) (*dto.TryoutResponseDTO, error)
}

type adminTryoutService struct {
	tryoutRepo repository.TryoutRepository
}

func NewAdminTryoutService(tryoutRepo repository.TryoutRepository) AdminTryoutService {
	return &adminTryoutService{tryoutRepo: tryoutRepo}
}

func (s *adminTryoutService) CreateTryout(req dto.TryoutCreateDTO) (*dto.TryoutResponseDTO, error) {
	valid := make(map[string]bool, len(exam.SubtestOrder))
	for _, name := range exam.SubtestOrder {
		valid[name] = true
	}

	var questions []model.Question
	for i, qDto := range req.Questions {
		if !valid[qDto.TestCategory] {
			return nil, apperr.Validation("question %d has unknown subtest category %q", i+1, qDto.TestCategory)
		}
		var questionModel model.Question
		copier.Copy(&questionModel, &qDto)
		questions = append(questions, questionModel)
	}

	tryoutModel := model.Tryout{
		Name:            req.Name,
		ExamCategory:    req.ExamCategory,
		DurationMinutes: req.DurationMinutes,
		TotalQuestions:  len(questions),
		Questions:       questions,
	}

	if err := s.tryoutRepo.Create(&tryoutModel); err != nil {
		log.Error().Err(err).Msg("Failed to create tryout in database")
		return nil, fmt.Errorf("database error creating tryout: %w", err)
	}

	var resp dto.TryoutResponseDTO
	if err := copier.Copy(&resp, &tryoutModel); err != nil {
		log.Error().Err(err).Msg("Failed to copy created Tryout model to TryoutResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
