package analytics

import (
	"sort"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
)

const (
	// StrengthThreshold is the inclusive topic accuracy for a strength.
	StrengthThreshold = 80.0
	// WeaknessThreshold is the exclusive topic accuracy below which a topic is a weakness.
	WeaknessThreshold = 60.0
)

// AnalyzePerformance aggregates accuracy and time overall, per difficulty and
// per topic. Topics between the two thresholds are neither strengths nor
// weaknesses.
func AnalyzePerformance(answers []models.AnsweredQuestion) *models.PerformanceAnalytics {
	result := &models.PerformanceAnalytics{
		TotalQuestions:      len(answers),
		StrengthAreas:       []string{},
		WeaknessAreas:       []string{},
		DifficultyBreakdown: make(map[models.DifficultyLevel]models.DifficultyStats, len(models.DifficultyLevels)),
		TopicPerformance:    []models.TopicPerformance{},
	}
	for _, d := range models.DifficultyLevels {
		result.DifficultyBreakdown[d] = models.DifficultyStats{}
	}

	topicIndex := make(map[string]int)

	for _, a := range answers {
		if a.IsCorrect {
			result.CorrectAnswers++
		}
		result.TotalTimeSpent += a.TimeSpentSeconds

		q := a.Question
		if q == nil {
			continue
		}

		// Unknown levels count toward the totals but get no bucket of their own.
		if q.DifficultyLevel.IsValid() {
			stats := result.DifficultyBreakdown[q.DifficultyLevel]
			stats.Attempted++
			if a.IsCorrect {
				stats.Correct++
			}
			result.DifficultyBreakdown[q.DifficultyLevel] = stats
		}

		seen := make(map[string]bool, len(q.TopicTags))
		for _, tag := range q.TopicTags {
			if seen[tag] {
				continue
			}
			seen[tag] = true

			i, ok := topicIndex[tag]
			if !ok {
				i = len(result.TopicPerformance)
				topicIndex[tag] = i
				result.TopicPerformance = append(result.TopicPerformance, models.TopicPerformance{Topic: tag})
			}
			result.TopicPerformance[i].Attempted++
			if a.IsCorrect {
				result.TopicPerformance[i].Correct++
			}
		}
	}

	result.AccuracyRate = percentage(result.CorrectAnswers, result.TotalQuestions)
	if result.TotalQuestions > 0 {
		result.AverageTimePerQuestion = float64(result.TotalTimeSpent) / float64(result.TotalQuestions)
	}

	for d, stats := range result.DifficultyBreakdown {
		stats.Percentage = percentage(stats.Correct, stats.Attempted)
		result.DifficultyBreakdown[d] = stats
	}

	for i := range result.TopicPerformance {
		tp := &result.TopicPerformance[i]
		tp.Percentage = percentage(tp.Correct, tp.Attempted)
	}
	sort.SliceStable(result.TopicPerformance, func(i, j int) bool {
		return result.TopicPerformance[i].Percentage > result.TopicPerformance[j].Percentage
	})

	for _, tp := range result.TopicPerformance {
		switch {
		case tp.Percentage >= StrengthThreshold:
			result.StrengthAreas = append(result.StrengthAreas, tp.Topic)
		case tp.Percentage < WeaknessThreshold:
			result.WeaknessAreas = append(result.WeaknessAreas, tp.Topic)
		}
	}

	return result
}
