package postgres

import (
	"context"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"github.com/SAP-F-2025/sat-results-service/internal/repositories"
	"gorm.io/gorm"
)

type AnswerPostgreSQL struct {
	db *gorm.DB
}

func NewAnswerPostgreSQL(db *gorm.DB) repositories.AnswerRepository {
	return &AnswerPostgreSQL{db: db}
}

func (a AnswerPostgreSQL) GetByAttempt(ctx context.Context, attemptID string) ([]models.AnsweredQuestion, error) {
	answers := []models.AnsweredQuestion{}
	if err := a.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Preload("Question").
		Order("answered_at ASC").
		Find(&answers).Error; err != nil {
		return nil, err
	}

	return answers, nil
}
