package dto

// AnswerSelectDTO toggles one option for a question in the active subtest.
type AnswerSelectDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Option     string `json:"option" binding:"required,oneof=A B C D E"`
}

// NavigateDTO moves within the active subtest's question list. Index is only
// consulted for the jump action.
type NavigateDTO struct {
	Action string `json:"action" binding:"required,oneof=next back jump"`
	Index  int    `json:"index"`
}

// SessionStateDTO mirrors the runner snapshot plus the question currently in
// view, which is what the exam page renders every tick.
type SessionStateDTO struct {
	SessionID       string              `json:"session_id"`
	TryoutID        uint                `json:"tryout_id"`
	State           string              `json:"state"`
	Subtest         string              `json:"subtest,omitempty"`
	QuestionIndex   int                 `json:"question_index"`
	QuestionCount   int                 `json:"question_count"`
	TimeLeft        int                 `json:"time_left"`
	Answers         map[uint]string     `json:"answers"`
	CurrentQuestion *SessionQuestionDTO `json:"current_question,omitempty"`
	AttemptNumber   int                 `json:"attempt_number,omitempty"`
	OverallScore    int                 `json:"overall_score,omitempty"`
	CategoryScores  map[string]int      `json:"category_scores,omitempty"`
	LastError       string              `json:"last_error,omitempty"`
}
