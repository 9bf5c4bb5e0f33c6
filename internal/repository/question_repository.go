package repository

import (
	"github.com/taktix-app/tryout-engine/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindByTryoutID(tryoutID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindByTryoutID returns all questions of a tryout ordered by id ascending,
// the stable order the runner and the answer key rely on.
func (r *questionRepository) FindByTryoutID(tryoutID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("tryout_id = ?", tryoutID).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
