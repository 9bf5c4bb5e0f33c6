package dto

import "time"

// AttemptSummaryDTO is one row of the attempt history view: raw
// correct/wrong/empty counts and the classic UTBK-style raw score
// (4 per correct, -1 per wrong).
type AttemptSummaryDTO struct {
	AttemptNumber  int `json:"attempt_number"`
	Correct        int `json:"correct"`
	Wrong          int `json:"wrong"`
	Empty          int `json:"empty"`
	RawScore       int `json:"raw_score"`
	TotalQuestions int `json:"total_questions"`
}

// QuestionResultDTO pairs a recorded answer with its question for the score
// detail view.
type QuestionResultDTO struct {
	QuestionID    uint    `json:"question_id"`
	QuestionText  string  `json:"question_text"`
	TestCategory  string  `json:"test_category"`
	UserAnswer    *string `json:"user_answer"`
	CorrectAnswer string  `json:"correct_answer"`
	IsCorrect     bool    `json:"is_correct"`
}

// AttemptScoreDTO is the stored result of one attempt.
type AttemptScoreDTO struct {
	TryoutID       uint                `json:"tryout_id"`
	AttemptNumber  int                 `json:"attempt_number"`
	OverallScore   int                 `json:"overall_score"`
	CategoryScores map[string]int      `json:"category_scores"`
	Results        []QuestionResultDTO `json:"results,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}
