package models

import "time"

// TestAttempt is one sitting of a practice exam by one user.
type TestAttempt struct {
	ID           string        `json:"id" gorm:"primaryKey;size:36"`
	UserID       string        `json:"user_id" gorm:"not null;size:255;index"`
	ExamID       string        `json:"exam_id" gorm:"not null;size:36;index"`
	Status       AttemptStatus `json:"status" gorm:"not null;size:20;index"`
	TotalScore   *int          `json:"total_score"`
	AccuracyRate *float64      `json:"accuracy_rate"`
	StartedAt    *time.Time    `json:"started_at"`
	CompletedAt  *time.Time    `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TestAttempt) TableName() string {
	return "test_attempts"
}

func (a *TestAttempt) IsCompleted() bool {
	return a.Status == AttemptCompleted
}

// Summary projects the attempt into the shape progress comparison consumes.
func (a *TestAttempt) Summary() AttemptSummary {
	return AttemptSummary{
		ID:           a.ID,
		Status:       a.Status,
		TotalScore:   a.TotalScore,
		AccuracyRate: a.AccuracyRate,
		CompletedAt:  a.CompletedAt,
	}
}

// AttemptSummary is a completed (or not) attempt as seen from the user's history.
type AttemptSummary struct {
	ID           string        `json:"id" validate:"required"`
	Status       AttemptStatus `json:"status" validate:"required,attempt_status"`
	TotalScore   *int          `json:"total_score" validate:"omitempty,min=0"`
	AccuracyRate *float64      `json:"accuracy_rate,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at"`
}

// AnsweredQuestion pairs one answer event with the question it answers.
// Question is nil when the referenced question no longer exists.
type AnsweredQuestion struct {
	ID               string    `json:"id" gorm:"primaryKey;size:36"`
	AttemptID        string    `json:"attempt_id" gorm:"not null;size:36;index" validate:"required"`
	QuestionID       string    `json:"question_id" gorm:"not null;size:36;index" validate:"required"`
	UserAnswer       *string   `json:"user_answer"`
	IsCorrect        bool      `json:"is_correct"`
	TimeSpentSeconds int       `json:"time_spent_seconds" validate:"min=0"`
	Question         *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`

	AnsweredAt time.Time `json:"answered_at"`
}

func (AnsweredQuestion) TableName() string {
	return "user_answers"
}

// ModuleTotal counts answers and correct answers inside one module.
type ModuleTotal struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ModuleTotals folds answers by module. Total is never negative and Correct
// never exceeds Total.
type ModuleTotals map[ModuleType]ModuleTotal

func (t ModuleTotals) Get(m ModuleType) ModuleTotal {
	return t[m]
}

// Sum returns the totals across every module, known or not.
func (t ModuleTotals) Sum() ModuleTotal {
	var sum ModuleTotal
	for _, mt := range t {
		sum.Correct += mt.Correct
		sum.Total += mt.Total
	}
	return sum
}
