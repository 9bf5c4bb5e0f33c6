package repository

import (
	"github.com/taktix-app/tryout-engine/internal/model"
	"gorm.io/gorm"
)

type TryoutRepository interface {
	Create(tryout *model.Tryout) error
	FindByID(id uint) (*model.Tryout, error)
	FindByIDWithQuestions(id uint) (*model.Tryout, error)
	FindAllWithQuestionCount() ([]struct {
		model.Tryout
		QuestionCount int
	}, error)
}

type tryoutRepository struct {
	db *gorm.DB
}

func NewTryoutRepository(db *gorm.DB) TryoutRepository {
	return &tryoutRepository{db: db}
}

func (r *tryoutRepository) Create(tryout *model.Tryout) error {
	// GORM creates the associated questions when tryout.Questions is populated.
	return r.db.Create(tryout).Error
}

func (r *tryoutRepository) FindByID(id uint) (*model.Tryout, error) {
	var tryout model.Tryout
	err := r.db.First(&tryout, id).Error
	return &tryout, err
}

func (r *tryoutRepository) FindByIDWithQuestions(id uint) (*model.Tryout, error) {
	var tryout model.Tryout
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&tryout, id).Error
	return &tryout, err
}

func (r *tryoutRepository) FindAllWithQuestionCount() ([]struct {
	model.Tryout
	QuestionCount int
}, error) {
	var results []struct {
		model.Tryout
		QuestionCount int
	}
	err := r.db.Model(&model.Tryout{}).
		Select("tryouts.*, (SELECT COUNT(*) FROM questions WHERE questions.tryout_id = tryouts.id AND questions.deleted_at IS NULL) as question_count").
		Where("tryouts.deleted_at IS NULL").
		Order("tryouts.created_at DESC").
		Scan(&results).Error
	return results, err
}
