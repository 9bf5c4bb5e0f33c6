package service

import (
	"encoding/json"
	"testing"

	"github.com/taktix-app/tryout-engine/internal/model"
	"gorm.io/gorm"
)

type fakeResultRepo struct {
	records []model.AnswerRecord
}

func (f *fakeResultRepo) MaxAttemptNumber(userID, tryoutID uint) (int, error) {
	max := 0
	for _, r := range f.records {
		if r.UserID == userID && r.TryoutID == tryoutID && r.AttemptNumber > max {
			max = r.AttemptNumber
		}
	}
	return max, nil
}

func (f *fakeResultRepo) FindByAttempt(userID, tryoutID uint, attemptNumber int) ([]model.AnswerRecord, error) {
	var out []model.AnswerRecord
	for _, r := range f.records {
		if r.UserID == userID && r.TryoutID == tryoutID && r.AttemptNumber == attemptNumber {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) FindByUserAndTryout(userID, tryoutID uint) ([]model.AnswerRecord, error) {
	var out []model.AnswerRecord
	for _, r := range f.records {
		if r.UserID == userID && r.TryoutID == tryoutID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeScoreRepo struct {
	records []model.ScoreRecord
}

func (f *fakeScoreRepo) FindByAttempt(userID, tryoutID uint, attemptNumber int) (*model.ScoreRecord, error) {
	for i, r := range f.records {
		if r.UserID == userID && r.TryoutID == tryoutID && r.AttemptNumber == attemptNumber {
			return &f.records[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScoreRepo) FindAllByUserAndTryout(userID, tryoutID uint) ([]model.ScoreRecord, error) {
	var out []model.ScoreRecord
	for _, r := range f.records {
		if r.UserID == userID && r.TryoutID == tryoutID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeQuestionRepo struct {
	questions []model.Question
}

func (f *fakeQuestionRepo) Create(q *model.Question) error { f.questions = append(f.questions, *q); return nil }

func (f *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for i, q := range f.questions {
		if q.ID == id {
			return &f.questions[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeQuestionRepo) FindByTryoutID(tryoutID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.TryoutID == tryoutID {
			out = append(out, q)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func TestGetAttemptHistory(t *testing.T) {
	questions := []model.Question{
		{ID: 1, TryoutID: 3, CorrectAnswer: "A"},
		{ID: 2, TryoutID: 3, CorrectAnswer: "B"},
		{ID: 3, TryoutID: 3, CorrectAnswer: "C"},
	}
	records := []model.AnswerRecord{
		// Attempt 1: one correct, one wrong, one empty.
		{UserID: 7, TryoutID: 3, QuestionID: 1, UserAnswer: strPtr("A"), CorrectAnswer: "A", AttemptNumber: 1},
		{UserID: 7, TryoutID: 3, QuestionID: 2, UserAnswer: strPtr("D"), CorrectAnswer: "B", AttemptNumber: 1},
		{UserID: 7, TryoutID: 3, QuestionID: 3, UserAnswer: nil, CorrectAnswer: "C", AttemptNumber: 1},
		// Attempt 2: all correct.
		{UserID: 7, TryoutID: 3, QuestionID: 1, UserAnswer: strPtr("A"), CorrectAnswer: "A", AttemptNumber: 2},
		{UserID: 7, TryoutID: 3, QuestionID: 2, UserAnswer: strPtr("B"), CorrectAnswer: "B", AttemptNumber: 2},
		{UserID: 7, TryoutID: 3, QuestionID: 3, UserAnswer: strPtr("C"), CorrectAnswer: "C", AttemptNumber: 2},
		// A different user's rows must not leak in.
		{UserID: 8, TryoutID: 3, QuestionID: 1, UserAnswer: strPtr("A"), CorrectAnswer: "A", AttemptNumber: 1},
	}

	svc := NewHistoryService(
		&fakeResultRepo{records: records},
		&fakeScoreRepo{},
		&fakeQuestionRepo{questions: questions},
	)

	got, err := svc.GetAttemptHistory(7, 3)
	if err != nil {
		t.Fatalf("GetAttemptHistory: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d summaries, want 2", len(got))
	}

	// Newest attempt first.
	if got[0].AttemptNumber != 2 || got[1].AttemptNumber != 1 {
		t.Fatalf("order = [%d, %d], want [2, 1]", got[0].AttemptNumber, got[1].AttemptNumber)
	}

	second, first := got[0], got[1]
	if first.Correct != 1 || first.Wrong != 1 || first.Empty != 1 {
		t.Errorf("attempt 1 counts = %d/%d/%d, want 1/1/1", first.Correct, first.Wrong, first.Empty)
	}
	if first.RawScore != 3 { // 1*4 - 1
		t.Errorf("attempt 1 raw score = %d, want 3", first.RawScore)
	}
	if second.Correct != 3 || second.RawScore != 12 {
		t.Errorf("attempt 2 = %d correct, raw %d; want 3 correct, raw 12", second.Correct, second.RawScore)
	}
}

func TestGetAttemptHistoryEmpty(t *testing.T) {
	svc := NewHistoryService(&fakeResultRepo{}, &fakeScoreRepo{}, &fakeQuestionRepo{})
	got, err := svc.GetAttemptHistory(7, 3)
	if err != nil {
		t.Fatalf("GetAttemptHistory: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d summaries for user without attempts, want 0", len(got))
	}
}

func TestGetAttemptScore(t *testing.T) {
	categoryJSON, _ := json.Marshal(map[string]int{"Penalaran Umum": 800})
	svc := NewHistoryService(
		&fakeResultRepo{records: []model.AnswerRecord{
			{UserID: 7, TryoutID: 3, QuestionID: 1, UserAnswer: strPtr("A"), CorrectAnswer: "A", AttemptNumber: 1},
			{UserID: 7, TryoutID: 3, QuestionID: 2, UserAnswer: nil, CorrectAnswer: "B", AttemptNumber: 1},
		}},
		&fakeScoreRepo{records: []model.ScoreRecord{
			{UserID: 7, TryoutID: 3, AttemptNumber: 1, OverallScore: 114, CategoryScores: categoryJSON},
		}},
		&fakeQuestionRepo{questions: []model.Question{
			{ID: 1, TryoutID: 3, QuestionText: "Q1", TestCategory: "Penalaran Umum"},
			{ID: 2, TryoutID: 3, QuestionText: "Q2", TestCategory: "Penalaran Umum"},
		}},
	)

	got, err := svc.GetAttemptScore(7, 3, 1)
	if err != nil {
		t.Fatalf("GetAttemptScore: %v", err)
	}
	if got.OverallScore != 114 {
		t.Errorf("overall = %d, want 114", got.OverallScore)
	}
	if got.CategoryScores["Penalaran Umum"] != 800 {
		t.Errorf("category score = %d, want 800", got.CategoryScores["Penalaran Umum"])
	}
	if len(got.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(got.Results))
	}
	if !got.Results[0].IsCorrect {
		t.Error("answered-correct row not marked correct")
	}
	if got.Results[1].IsCorrect || got.Results[1].UserAnswer != nil {
		t.Error("unanswered row must be null and never correct")
	}

	if _, err := svc.GetAttemptScore(7, 3, 99); err == nil {
		t.Error("expected error for missing attempt")
	}
}
