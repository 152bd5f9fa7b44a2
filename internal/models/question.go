package models

import (
	"time"

	"gorm.io/datatypes"
)

// Question is a catalog entry. Questions are authored elsewhere; this service
// only reads them.
type Question struct {
	ID              string                            `json:"id" gorm:"primaryKey;size:36"`
	ExamID          string                            `json:"exam_id" gorm:"size:36;index"`
	ModuleType      ModuleType                        `json:"module_type" gorm:"not null;size:32;index" validate:"required,module_type"`
	QuestionNumber  int                               `json:"question_number" gorm:"not null" validate:"required,min=1"`
	DifficultyLevel DifficultyLevel                   `json:"difficulty_level" gorm:"not null;size:16" validate:"required,difficulty_level"`
	TopicTags       datatypes.JSONSlice[string]       `json:"topic_tags" gorm:"type:jsonb"`
	CorrectAnswer   datatypes.JSONType[CorrectAnswer] `json:"correct_answer" gorm:"type:jsonb"`
	Explanation     *string                           `json:"explanation,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Question) TableName() string {
	return "questions"
}
