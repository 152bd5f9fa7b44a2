package services

import (
	"context"
	"time"

	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"github.com/SAP-F-2025/sat-results-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	attempt *MockAttemptRepository
	answer  *MockAnswerRepository
}

func newMockRepository() *MockRepository {
	return &MockRepository{
		attempt: &MockAttemptRepository{},
		answer:  &MockAnswerRepository{},
	}
}

func (m *MockRepository) Attempt() repositories.AttemptRepository {
	return m.attempt
}

func (m *MockRepository) Answer() repositories.AnswerRepository {
	return m.answer
}

type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) GetByID(ctx context.Context, id string) (*models.TestAttempt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TestAttempt), args.Error(1)
}

func (m *MockAttemptRepository) GetCompletedByUser(ctx context.Context, userID string) ([]models.AttemptSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttemptSummary), args.Error(1)
}

type MockAnswerRepository struct {
	mock.Mock
}

func (m *MockAnswerRepository) GetByAttempt(ctx context.Context, attemptID string) ([]models.AnsweredQuestion, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AnsweredQuestion), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) error {
	return m.Called(ctx, key, dest).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCache) DeletePattern(ctx context.Context, pattern string) error {
	return m.Called(ctx, pattern).Error(0)
}
