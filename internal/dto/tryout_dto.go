package dto

import "time"

// TryoutSummaryDTO is used for listing tryouts available to students.
type TryoutSummaryDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	ExamCategory    string    `json:"exam_category,omitempty"`
	TotalQuestions  int       `json:"total_questions"`
	DurationMinutes float64   `json:"duration_minutes"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// TryoutResponseDTO is the tryout metadata shown before starting an attempt.
type TryoutResponseDTO struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	ExamCategory    string    `json:"exam_category,omitempty"`
	TotalQuestions  int       `json:"total_questions"`
	DurationMinutes float64   `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

// SessionQuestionDTO is a question as presented during an attempt; the
// correct answer never leaves the server while a session is running.
type SessionQuestionDTO struct {
	ID           uint    `json:"id"`
	QuestionText string  `json:"question_text"`
	OptionA      string  `json:"option_a"`
	OptionB      string  `json:"option_b"`
	OptionC      string  `json:"option_c"`
	OptionD      string  `json:"option_d"`
	OptionE      *string `json:"option_e,omitempty"`
	TestCategory string  `json:"test_category"`
}

// AnswerKeyItemDTO is one row of the post-attempt answer key.
type AnswerKeyItemDTO struct {
	ID            uint    `json:"id"`
	QuestionText  string  `json:"question_text"`
	OptionA       string  `json:"option_a"`
	OptionB       string  `json:"option_b"`
	OptionC       string  `json:"option_c"`
	OptionD       string  `json:"option_d"`
	OptionE       *string `json:"option_e,omitempty"`
	CorrectAnswer string  `json:"correct_answer"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
