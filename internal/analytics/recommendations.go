package analytics

import (
	"fmt"
	"sort"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
)

const highPriorityThreshold = 40.0

// AnalyzeWeaknesses turns weak topics and the weakest difficulty bucket into
// study recommendations, weakest first.
func AnalyzeWeaknesses(perf *models.PerformanceAnalytics) []models.Recommendation {
	recommendations := []models.Recommendation{}
	if perf == nil {
		return recommendations
	}

	weak := make(map[string]bool, len(perf.WeaknessAreas))
	for _, topic := range perf.WeaknessAreas {
		weak[topic] = true
	}

	for _, tp := range perf.TopicPerformance {
		if !weak[tp.Topic] {
			continue
		}
		recommendations = append(recommendations, models.Recommendation{
			Type:     models.RecommendationTopic,
			Target:   tp.Topic,
			Accuracy: tp.Percentage,
			Priority: priorityFor(tp.Percentage),
			Message:  fmt.Sprintf("Review %s: %d of %d correct", tp.Topic, tp.Correct, tp.Attempted),
		})
	}

	if level, stats, ok := weakestDifficulty(perf.DifficultyBreakdown); ok && stats.Percentage < WeaknessThreshold {
		recommendations = append(recommendations, models.Recommendation{
			Type:     models.RecommendationDifficulty,
			Target:   string(level),
			Accuracy: stats.Percentage,
			Priority: priorityFor(stats.Percentage),
			Message:  fmt.Sprintf("Practice more %s questions: %.0f%% accuracy", level, stats.Percentage),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Accuracy < recommendations[j].Accuracy
	})
	return recommendations
}

func priorityFor(accuracy float64) models.RecommendationPriority {
	if accuracy < highPriorityThreshold {
		return models.PriorityHigh
	}
	return models.PriorityMedium
}

// weakestDifficulty walks buckets in easy→hard order so ties go to the easier level.
func weakestDifficulty(breakdown map[models.DifficultyLevel]models.DifficultyStats) (models.DifficultyLevel, models.DifficultyStats, bool) {
	var (
		level models.DifficultyLevel
		best  models.DifficultyStats
		found bool
	)
	for _, d := range models.DifficultyLevels {
		stats, ok := breakdown[d]
		if !ok || stats.Attempted == 0 {
			continue
		}
		if !found || stats.Percentage < best.Percentage {
			level, best, found = d, stats, true
		}
	}
	return level, best, found
}
