package analytics

import (
	"sort"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
)

// BuildQuestionAnalysis projects every answer into its display record, sorted
// by question number. It fails on the first answer whose question is missing.
func BuildQuestionAnalysis(answers []models.AnsweredQuestion) ([]models.QuestionAnalysis, error) {
	analysis := make([]models.QuestionAnalysis, 0, len(answers))

	for _, a := range answers {
		q := a.Question
		if q == nil {
			return nil, &UnresolvedQuestionError{AnswerID: a.ID, QuestionID: a.QuestionID}
		}

		tags := make([]string, len(q.TopicTags))
		copy(tags, q.TopicTags)

		analysis = append(analysis, models.QuestionAnalysis{
			QuestionID:     q.ID,
			QuestionNumber: q.QuestionNumber,
			ModuleType:     q.ModuleType,
			UserAnswer:     a.UserAnswer,
			CorrectAnswer:  q.CorrectAnswer.Data(),
			IsCorrect:      a.IsCorrect,
			TimeSpent:      a.TimeSpentSeconds,
			Difficulty:     q.DifficultyLevel,
			TopicTags:      tags,
			Explanation:    q.Explanation,
		})
	}

	sort.SliceStable(analysis, func(i, j int) bool {
		return analysis[i].QuestionNumber < analysis[j].QuestionNumber
	})

	return analysis, nil
}
