package postgres

import (
	"github.com/SAP-F-2025/sat-results-service/internal/repositories"
	"gorm.io/gorm"
)

type repository struct {
	attempt repositories.AttemptRepository
	answer  repositories.AnswerRepository
}

// NewRepository builds every Postgres-backed repository over one connection.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &repository{
		attempt: NewAttemptPostgreSQL(db),
		answer:  NewAnswerPostgreSQL(db),
	}
}

func (r *repository) Attempt() repositories.AttemptRepository {
	return r.attempt
}

func (r *repository) Answer() repositories.AnswerRepository {
	return r.answer
}
