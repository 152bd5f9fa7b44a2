package postgres

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"github.com/SAP-F-2025/sat-results-service/internal/repositories"
	"gorm.io/gorm"
)

const summaryColumns = "id, status, total_score, accuracy_rate, completed_at"

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a AttemptPostgreSQL) GetByID(ctx context.Context, id string) (*models.TestAttempt, error) {
	var attempt models.TestAttempt
	if err := a.db.WithContext(ctx).Where("id = ?", id).First(&attempt).Error; err != nil {
		return nil, translateError(err)
	}

	return &attempt, nil
}

func (a AttemptPostgreSQL) GetCompletedByUser(ctx context.Context, userID string) ([]models.AttemptSummary, error) {
	summaries := []models.AttemptSummary{}

	if err := completedByUser(a.db.WithContext(ctx), userID).Scan(&summaries).Error; err != nil {
		return nil, err
	}

	return summaries, nil
}

// completedByUser selects a user's completed attempts, newest first.
// Postgres sorts NULLs first on DESC, so unfinished timestamps are pushed last.
func completedByUser(tx *gorm.DB, userID string) *gorm.DB {
	return tx.Model(&models.TestAttempt{}).
		Select(summaryColumns).
		Where("user_id = ? AND status = ?", userID, models.AttemptCompleted).
		Order("completed_at DESC NULLS LAST")
}

func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
