package repositories

import (
	"context"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
)

// AttemptRepository interface for test attempt lookups
type AttemptRepository interface {
	GetByID(ctx context.Context, id string) (*models.TestAttempt, error)

	// History
	GetCompletedByUser(ctx context.Context, userID string) ([]models.AttemptSummary, error)
}
