package analytics

import (
	"sort"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
)

// CompareProgress compares the current attempt with the most recently
// completed prior attempt in history. It returns nil when there is no prior
// completed attempt to compare against.
func CompareProgress(history []models.AttemptSummary, currentAttemptID string, currentTotalScore int, currentAccuracy float64) *models.ProgressComparison {
	previous := make([]models.AttemptSummary, 0, len(history))
	for _, h := range history {
		if h.Status != models.AttemptCompleted || h.ID == currentAttemptID {
			continue
		}
		previous = append(previous, h)
	}
	if len(previous) == 0 {
		return nil
	}

	// newest first; attempts without a completion time sort last
	sort.SliceStable(previous, func(i, j int) bool {
		a, b := previous[i].CompletedAt, previous[j].CompletedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})

	latest := previous[0]

	previousScore := 0
	if latest.TotalScore != nil {
		previousScore = *latest.TotalScore
	}

	accuracyImprovement := 0.0
	if latest.AccuracyRate != nil {
		accuracyImprovement = currentAccuracy - *latest.AccuracyRate
	}

	return &models.ProgressComparison{
		PreviousAttempts:    len(previous),
		PreviousAttemptID:   latest.ID,
		ScoreImprovement:    currentTotalScore - previousScore,
		AccuracyImprovement: accuracyImprovement,
	}
}
