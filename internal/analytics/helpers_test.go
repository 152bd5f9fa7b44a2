package analytics

import (
	"fmt"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"gorm.io/datatypes"
)

var questionSeq int

func newAnswer(module models.ModuleType, difficulty models.DifficultyLevel, correct bool, tags ...string) models.AnsweredQuestion {
	questionSeq++
	qid := fmt.Sprintf("q-%d", questionSeq)
	answer := "A"
	return models.AnsweredQuestion{
		ID:               fmt.Sprintf("a-%d", questionSeq),
		AttemptID:        "attempt-1",
		QuestionID:       qid,
		UserAnswer:       &answer,
		IsCorrect:        correct,
		TimeSpentSeconds: 30,
		Question: &models.Question{
			ID:              qid,
			ModuleType:      module,
			QuestionNumber:  questionSeq,
			DifficultyLevel: difficulty,
			TopicTags:       tags,
			CorrectAnswer:   datatypes.NewJSONType(models.NewCorrectAnswer("A")),
		},
	}
}

// repeatAnswers builds n answers of which the first correct are correct.
func repeatAnswers(n, correct int, module models.ModuleType, difficulty models.DifficultyLevel, tags ...string) []models.AnsweredQuestion {
	answers := make([]models.AnsweredQuestion, 0, n)
	for i := 0; i < n; i++ {
		answers = append(answers, newAnswer(module, difficulty, i < correct, tags...))
	}
	return answers
}
