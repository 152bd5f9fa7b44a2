package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SAP-F-2025/sat-results-service/internal/analytics"
	"github.com/SAP-F-2025/sat-results-service/internal/cache"
	"github.com/SAP-F-2025/sat-results-service/internal/events"
	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"github.com/SAP-F-2025/sat-results-service/internal/repositories"
	"github.com/SAP-F-2025/sat-results-service/internal/validator"
)

const DefaultResultsCacheTTL = 30 * time.Minute

// ScoreRequest is a caller-supplied answer set scored without touching storage.
type ScoreRequest struct {
	UserID           string                    `json:"user_id"`
	Answers          []models.AnsweredQuestion `json:"answers" validate:"required,min=1,dive"`
	PreviousAttempts []models.AttemptSummary   `json:"previous_attempts" validate:"omitempty,dive"`
}

// ResultsService assembles score reports for completed attempts.
type ResultsService interface {
	GetComprehensiveResults(ctx context.Context, attemptID string) (*models.ComprehensiveResults, error)
	GetDetailedScore(ctx context.Context, attemptID string) (*models.DetailedScore, error)
	GetQuestionAnalysis(ctx context.Context, attemptID string) ([]models.QuestionAnalysis, error)
	GetPerformanceAnalytics(ctx context.Context, attemptID string) (*models.PerformanceAnalytics, error)
	// GetProgress returns nil without error when the user has no earlier completed attempt.
	GetProgress(ctx context.Context, attemptID string) (*models.ProgressComparison, error)

	CalculateFromAnswers(ctx context.Context, req *ScoreRequest) (*models.ComprehensiveResults, error)

	InvalidateResults(ctx context.Context, attemptID string) error
	FlushResults(ctx context.Context) error
}

type ResultsConfig struct {
	CacheTTL     time.Duration
	DebugLogging bool
}

type resultsService struct {
	repo       repositories.Repository
	cache      cache.CacheService
	publisher  events.EventPublisher
	validator  *validator.Validator
	calculator *analytics.DetailedScoreCalculator
	logger     *ServiceLogger
	cacheTTL   time.Duration
	now        func() time.Time
}

func NewResultsService(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
	config ResultsConfig,
) ResultsService {
	ttl := config.CacheTTL
	if ttl <= 0 {
		ttl = DefaultResultsCacheTTL
	}

	return &resultsService{
		repo:       repo,
		cache:      cacheService,
		publisher:  publisher,
		validator:  validator,
		calculator: analytics.NewDetailedScoreCalculator(analytics.NewScoreConverter()),
		logger: NewServiceLogger(logger, LogConfig{
			Service:     "results",
			Component:   "results_service",
			EnableDebug: config.DebugLogging,
		}),
		cacheTTL: ttl,
		now:      time.Now,
	}
}

// ===== REPORTS =====

func (s *resultsService) GetComprehensiveResults(ctx context.Context, attemptID string) (result *models.ComprehensiveResults, err error) {
	scope := s.logger.WithOperation(ctx, "get_comprehensive_results", attemptID)
	defer func() { scope.LogResult(err) }()

	return s.comprehensiveResults(ctx, attemptID)
}

func (s *resultsService) GetDetailedScore(ctx context.Context, attemptID string) (*models.DetailedScore, error) {
	results, err := s.GetComprehensiveResults(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return results.DetailedScore, nil
}

func (s *resultsService) GetQuestionAnalysis(ctx context.Context, attemptID string) ([]models.QuestionAnalysis, error) {
	results, err := s.GetComprehensiveResults(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return results.QuestionAnalysis, nil
}

func (s *resultsService) GetPerformanceAnalytics(ctx context.Context, attemptID string) (*models.PerformanceAnalytics, error) {
	results, err := s.GetComprehensiveResults(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return results.PerformanceAnalytics, nil
}

func (s *resultsService) GetProgress(ctx context.Context, attemptID string) (*models.ProgressComparison, error) {
	results, err := s.GetComprehensiveResults(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	return results.Progress, nil
}

func (s *resultsService) comprehensiveResults(ctx context.Context, attemptID string) (*models.ComprehensiveResults, error) {
	if cached, ok := s.cachedResults(ctx, attemptID); ok {
		return cached, nil
	}

	attempt, err := s.loadCompletedAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	answers, err := s.repo.Answer().GetByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load answers: %w", err)
	}

	results, err := s.buildResults(attempt.ID, attempt.UserID, answers)
	if err != nil {
		return nil, err
	}

	history, err := s.repo.Attempt().GetCompletedByUser(ctx, attempt.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt history: %w", err)
	}
	results.Progress = analytics.CompareProgress(history, attempt.ID,
		results.DetailedScore.TotalScore, results.PerformanceAnalytics.AccuracyRate)

	s.storeResults(ctx, results)
	s.publishCalculated(ctx, results)

	return results, nil
}

func (s *resultsService) loadCompletedAttempt(ctx context.Context, attemptID string) (*models.TestAttempt, error) {
	attempt, err := s.repo.Attempt().GetByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to load attempt: %w", err)
	}

	if !attempt.IsCompleted() {
		return nil, fmt.Errorf("%w: status is %s", ErrAttemptNotCompleted, attempt.Status)
	}

	return attempt, nil
}

// buildResults runs every calculator over answers. Question analysis goes
// first so an unresolved question fails the whole report.
func (s *resultsService) buildResults(attemptID, userID string, answers []models.AnsweredQuestion) (*models.ComprehensiveResults, error) {
	questionAnalysis, err := analytics.BuildQuestionAnalysis(answers)
	if err != nil {
		return nil, dataIntegrity(err)
	}

	performance := analytics.AnalyzePerformance(answers)

	return &models.ComprehensiveResults{
		AttemptID:            attemptID,
		UserID:               userID,
		DetailedScore:        s.calculator.Calculate(answers),
		QuestionAnalysis:     questionAnalysis,
		PerformanceAnalytics: performance,
		Recommendations:      analytics.AnalyzeWeaknesses(performance),
		GeneratedAt:          s.now().UTC(),
	}, nil
}

// ===== STATELESS SCORING =====

func (s *resultsService) CalculateFromAnswers(ctx context.Context, req *ScoreRequest) (result *models.ComprehensiveResults, err error) {
	scope := s.logger.WithOperation(ctx, "calculate_from_answers", "")
	defer func() { scope.LogResult(err) }()

	if req == nil {
		return nil, validationFailed(NewValidationError("answers", "is required", nil))
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, validationFailed(err)
	}

	attemptID := req.Answers[0].AttemptID
	scope.SetAttemptID(attemptID)
	for _, a := range req.Answers[1:] {
		if a.AttemptID != attemptID {
			return nil, fmt.Errorf("%w: answer %s belongs to %s, expected %s", ErrMixedAttempts, a.ID, a.AttemptID, attemptID)
		}
	}

	result, err = s.buildResults(attemptID, req.UserID, req.Answers)
	if err != nil {
		return nil, err
	}

	if len(req.PreviousAttempts) > 0 {
		result.Progress = analytics.CompareProgress(req.PreviousAttempts, attemptID,
			result.DetailedScore.TotalScore, result.PerformanceAnalytics.AccuracyRate)
	}

	return result, nil
}

// ===== CACHE =====

func (s *resultsService) InvalidateResults(ctx context.Context, attemptID string) (err error) {
	scope := s.logger.WithOperation(ctx, "invalidate_results", attemptID)
	defer func() { scope.LogResult(err) }()

	if err := s.cache.Delete(ctx, cache.ResultsKey(attemptID)); err != nil {
		return fmt.Errorf("failed to invalidate results: %w", err)
	}

	s.publish(ctx, events.NewEvent(events.EventResultsInvalidated, events.ResultsInvalidatedEvent{
		AttemptID:     attemptID,
		InvalidatedAt: s.now().UTC(),
	}))
	return nil
}

func (s *resultsService) FlushResults(ctx context.Context) (err error) {
	scope := s.logger.WithOperation(ctx, "flush_results", "")
	defer func() { scope.LogResult(err) }()

	if err := s.cache.DeletePattern(ctx, cache.ResultsKey("*")); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}

// cachedResults never fails the request; a broken cache only costs a recompute.
func (s *resultsService) cachedResults(ctx context.Context, attemptID string) (*models.ComprehensiveResults, bool) {
	var cached models.ComprehensiveResults
	err := s.cache.Get(ctx, cache.ResultsKey(attemptID), &cached)
	switch {
	case err == nil:
		s.logger.Debug(ctx, "Results served from cache", "attempt_id", attemptID)
		return &cached, true
	case errors.Is(err, cache.ErrCacheMiss):
		return nil, false
	default:
		s.logger.Warn(ctx, "Failed to read cached results", "attempt_id", attemptID, "error", err)
		return nil, false
	}
}

func (s *resultsService) storeResults(ctx context.Context, results *models.ComprehensiveResults) {
	if err := s.cache.Set(ctx, cache.ResultsKey(results.AttemptID), results, s.cacheTTL); err != nil {
		s.logger.Warn(ctx, "Failed to cache results", "attempt_id", results.AttemptID, "error", err)
	}
}

// ===== EVENTS =====

func (s *resultsService) publishCalculated(ctx context.Context, results *models.ComprehensiveResults) {
	payload := events.ResultsCalculatedEvent{
		AttemptID:            results.AttemptID,
		UserID:               results.UserID,
		TotalScore:           results.DetailedScore.TotalScore,
		EvidenceBasedReading: results.DetailedScore.EvidenceBasedReading,
		MathScore:            results.DetailedScore.MathScore,
		AccuracyRate:         results.PerformanceAnalytics.AccuracyRate,
		WeaknessAreas:        results.PerformanceAnalytics.WeaknessAreas,
		CalculatedAt:         results.GeneratedAt,
	}
	if results.Progress != nil {
		improvement := results.Progress.ScoreImprovement
		payload.ScoreImprovement = &improvement
	}

	s.publish(ctx, events.NewEvent(events.EventResultsCalculated, payload))
}

func (s *resultsService) publish(ctx context.Context, event *events.Event) {
	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		s.logger.Warn(ctx, "Failed to publish event", "event_type", event.Type, "event_id", event.ID, "error", err)
	}
}
