package repositories

import "errors"

// ErrNotFound is returned when a lookup by primary key matches no row.
var ErrNotFound = errors.New("record not found")

// ===== AGGREGATE =====

// Repository groups the read-side repositories the results service needs.
type Repository interface {
	Attempt() AttemptRepository
	Answer() AnswerRepository
}
