package repositories

import (
	"context"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
)

// AnswerRepository interface for recorded answers of an attempt
type AnswerRepository interface {
	// GetByAttempt returns every answer of the attempt with its question
	// preloaded. Answers whose question no longer exists keep a nil Question.
	GetByAttempt(ctx context.Context, attemptID string) ([]models.AnsweredQuestion, error)
}
