package dto

// QuestionCreateDTO is used within TryoutCreateDTO for admin tryout creation.
type QuestionCreateDTO struct {
	QuestionText  string   `json:"question_text" binding:"required"`
	OptionA       string   `json:"option_a" binding:"required"`
	OptionB       string   `json:"option_b" binding:"required"`
	OptionC       string   `json:"option_c" binding:"required"`
	OptionD       string   `json:"option_d" binding:"required"`
	OptionE       *string  `json:"option_e"`
	CorrectAnswer string   `json:"correct_answer" binding:"required,oneof=A B C D E"`
	TestCategory  string   `json:"test_category" binding:"required"`
	Difficulty    *float64 `json:"difficulty"`
}

// TryoutCreateDTO is for admins to create a new tryout with all its questions.
type TryoutCreateDTO struct {
	Name            string             `json:"name" binding:"required"`
	ExamCategory    string             `json:"exam_category"`
	DurationMinutes float64            `json:"duration_minutes"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,min=1,dive"`
}
