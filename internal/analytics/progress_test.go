package analytics

import (
	"testing"
	"time"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestCompareProgress_NoHistory(t *testing.T) {
	assert.Nil(t, CompareProgress(nil, "current", 1350, 80))
}

func TestCompareProgress_OnlyCurrentOrIncompleteAttempts(t *testing.T) {
	now := time.Now()
	history := []models.AttemptSummary{
		{ID: "current", Status: models.AttemptCompleted, TotalScore: intPtr(1350), CompletedAt: timePtr(now)},
		{ID: "open", Status: models.AttemptInProgress},
	}

	assert.Nil(t, CompareProgress(history, "current", 1350, 80))
}

func TestCompareProgress_SinglePriorAttempt(t *testing.T) {
	history := []models.AttemptSummary{
		{ID: "prev", Status: models.AttemptCompleted, TotalScore: intPtr(1200), CompletedAt: timePtr(time.Now().Add(-24 * time.Hour))},
	}

	got := CompareProgress(history, "current", 1350, 80)

	require.NotNil(t, got)
	assert.Equal(t, 1, got.PreviousAttempts)
	assert.Equal(t, "prev", got.PreviousAttemptID)
	assert.Equal(t, 150, got.ScoreImprovement)
	assert.Equal(t, 0.0, got.AccuracyImprovement)
}

func TestCompareProgress_UsesMostRecentRegardlessOfOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	history := []models.AttemptSummary{
		{ID: "oldest", Status: models.AttemptCompleted, TotalScore: intPtr(1000), CompletedAt: timePtr(base)},
		{ID: "newest", Status: models.AttemptCompleted, TotalScore: intPtr(1250), AccuracyRate: floatPtr(70), CompletedAt: timePtr(base.Add(48 * time.Hour))},
		{ID: "undated", Status: models.AttemptCompleted, TotalScore: intPtr(1500)},
		{ID: "middle", Status: models.AttemptCompleted, TotalScore: intPtr(1100), CompletedAt: timePtr(base.Add(24 * time.Hour))},
		{ID: "current", Status: models.AttemptCompleted, TotalScore: intPtr(1300), CompletedAt: timePtr(base.Add(72 * time.Hour))},
	}

	got := CompareProgress(history, "current", 1300, 82.5)

	require.NotNil(t, got)
	assert.Equal(t, 4, got.PreviousAttempts)
	assert.Equal(t, "newest", got.PreviousAttemptID)
	assert.Equal(t, 50, got.ScoreImprovement)
	assert.InDelta(t, 12.5, got.AccuracyImprovement, 1e-9)
}

func TestCompareProgress_NullPreviousScoreCountsAsZero(t *testing.T) {
	history := []models.AttemptSummary{
		{ID: "prev", Status: models.AttemptCompleted, CompletedAt: timePtr(time.Now())},
	}

	got := CompareProgress(history, "current", 900, 50)

	require.NotNil(t, got)
	assert.Equal(t, 900, got.ScoreImprovement)
}
