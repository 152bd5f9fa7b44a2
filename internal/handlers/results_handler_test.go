package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SAP-F-2025/sat-results-service/internal/analytics"
	apperrors "github.com/SAP-F-2025/sat-results-service/internal/errors"
	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"github.com/SAP-F-2025/sat-results-service/internal/services"
	"github.com/SAP-F-2025/sat-results-service/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type MockResultsService struct {
	mock.Mock
}

func (m *MockResultsService) GetComprehensiveResults(ctx context.Context, attemptID string) (*models.ComprehensiveResults, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComprehensiveResults), args.Error(1)
}

func (m *MockResultsService) GetDetailedScore(ctx context.Context, attemptID string) (*models.DetailedScore, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DetailedScore), args.Error(1)
}

func (m *MockResultsService) GetQuestionAnalysis(ctx context.Context, attemptID string) ([]models.QuestionAnalysis, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuestionAnalysis), args.Error(1)
}

func (m *MockResultsService) GetPerformanceAnalytics(ctx context.Context, attemptID string) (*models.PerformanceAnalytics, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PerformanceAnalytics), args.Error(1)
}

func (m *MockResultsService) GetProgress(ctx context.Context, attemptID string) (*models.ProgressComparison, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProgressComparison), args.Error(1)
}

func (m *MockResultsService) CalculateFromAnswers(ctx context.Context, req *services.ScoreRequest) (*models.ComprehensiveResults, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ComprehensiveResults), args.Error(1)
}

func (m *MockResultsService) InvalidateResults(ctx context.Context, attemptID string) error {
	return m.Called(ctx, attemptID).Error(0)
}

func (m *MockResultsService) FlushResults(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockServiceManager struct {
	results services.ResultsService
}

func (m *mockServiceManager) Results() services.ResultsService {
	return m.results
}

func newTestRouter(svc *MockResultsService) *gin.Engine {
	logger := utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewHandlerManager(&mockServiceManager{results: svc}, logger).NewRouter(nil)
}

func perform(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	w := perform(newTestRouter(&MockResultsService{}), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"sat-results-service"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(utils.HeaderRequestID))
}

func TestGetResults_Success(t *testing.T) {
	svc := &MockResultsService{}
	svc.On("GetComprehensiveResults", mock.Anything, "attempt-1").Return(&models.ComprehensiveResults{
		AttemptID:     "attempt-1",
		DetailedScore: &models.DetailedScore{TotalScore: 1350},
	}, nil)

	w := perform(newTestRouter(svc), http.MethodGet, "/api/v1/attempts/attempt-1/results", "")

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "attempt-1", data["attempt_id"])
	assert.Equal(t, float64(1350), data["detailed_score"].(map[string]interface{})["total_score"])
	svc.AssertExpectations(t)
}

func TestSectionEndpoints(t *testing.T) {
	svc := &MockResultsService{}
	svc.On("GetDetailedScore", mock.Anything, "a").Return(&models.DetailedScore{TotalScore: 1000}, nil)
	svc.On("GetQuestionAnalysis", mock.Anything, "a").Return([]models.QuestionAnalysis{{QuestionNumber: 1}}, nil)
	svc.On("GetPerformanceAnalytics", mock.Anything, "a").Return(&models.PerformanceAnalytics{TotalQuestions: 4}, nil)
	svc.On("GetProgress", mock.Anything, "a").Return(&models.ProgressComparison{ScoreImprovement: 150}, nil)

	router := newTestRouter(svc)
	for _, path := range []string{"score", "questions", "analytics", "progress"} {
		w := perform(router, http.MethodGet, "/api/v1/attempts/a/"+path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotNil(t, decode(t, w)["data"], path)
	}
	svc.AssertExpectations(t)
}

func TestGetProgress_NoPreviousAttempts(t *testing.T) {
	svc := &MockResultsService{}
	svc.On("GetProgress", mock.Anything, "attempt-1").Return(nil, nil)

	w := perform(newTestRouter(svc), http.MethodGet, "/api/v1/attempts/attempt-1/progress", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"No previous attempts","data":null}`, w.Body.String())
}

func TestGetResults_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", services.ErrAttemptNotFound, http.StatusNotFound, CodeAttemptNotFound},
		{"not completed", fmt.Errorf("%w: status is in_progress", services.ErrAttemptNotCompleted), http.StatusConflict, CodeAttemptIncomplete},
		{"unresolved question", fmt.Errorf("%w: %w", services.ErrDataIntegrity, &analytics.UnresolvedQuestionError{AnswerID: "a", QuestionID: "q"}), http.StatusUnprocessableEntity, CodeResultsUnavailable},
		{"database down", errors.New("connection reset"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockResultsService{}
			svc.On("GetComprehensiveResults", mock.Anything, "attempt-1").Return(nil, tt.err)

			w := perform(newTestRouter(svc), http.MethodGet, "/api/v1/attempts/attempt-1/results", "")

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decode(t, w)["code"])
		})
	}
}

func TestGetResults_DataIntegrityHidesDetails(t *testing.T) {
	svc := &MockResultsService{}
	svc.On("GetComprehensiveResults", mock.Anything, "attempt-1").
		Return(nil, fmt.Errorf("%w: %w", services.ErrDataIntegrity, &analytics.UnresolvedQuestionError{AnswerID: "a", QuestionID: "secret-q"}))

	w := perform(newTestRouter(svc), http.MethodGet, "/api/v1/attempts/attempt-1/results", "")

	assert.Equal(t, "Could not load results", decode(t, w)["message"])
	assert.NotContains(t, w.Body.String(), "secret-q")
}

func TestCalculate(t *testing.T) {
	svc := &MockResultsService{}
	svc.On("CalculateFromAnswers", mock.Anything, mock.MatchedBy(func(req *services.ScoreRequest) bool {
		return len(req.Answers) == 1 && req.Answers[0].AttemptID == "scratch" && req.Answers[0].Question.ModuleType == models.ModuleMath1
	})).Return(&models.ComprehensiveResults{AttemptID: "scratch"}, nil)

	body := `{"answers":[{"id":"a1","attempt_id":"scratch","question_id":"q1","is_correct":true,"time_spent_seconds":12,
		"question":{"id":"q1","module_type":"math1","question_number":1,"difficulty_level":"easy","correct_answer":["1/2","0.5"]}}]}`
	w := perform(newTestRouter(svc), http.MethodPost, "/api/v1/scoring/calculate", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "scratch", decode(t, w)["data"].(map[string]interface{})["attempt_id"])
	svc.AssertExpectations(t)
}

func TestCalculate_MalformedBody(t *testing.T) {
	svc := &MockResultsService{}

	w := perform(newTestRouter(svc), http.MethodPost, "/api/v1/scoring/calculate", `{"answers":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, CodeInvalidRequest, decode(t, w)["code"])
	svc.AssertNotCalled(t, "CalculateFromAnswers", mock.Anything, mock.Anything)
}

func TestCalculate_ValidationDetails(t *testing.T) {
	svc := &MockResultsService{}
	validationErr := fmt.Errorf("%w: %w", services.ErrValidationFailed, apperrors.ValidationErrors{
		{Field: "answers", Message: "is required", Rule: "required"},
	})
	svc.On("CalculateFromAnswers", mock.Anything, mock.Anything).Return(nil, validationErr)

	w := perform(newTestRouter(svc), http.MethodPost, "/api/v1/scoring/calculate", `{}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, CodeValidationFailed, body["code"])
	details := body["details"].([]interface{})
	require.Len(t, details, 1)
	assert.Equal(t, "answers", details[0].(map[string]interface{})["field"])
}

func TestCacheEndpoints(t *testing.T) {
	svc := &MockResultsService{}
	svc.On("InvalidateResults", mock.Anything, "attempt-1").Return(nil)
	svc.On("FlushResults", mock.Anything).Return(nil)

	router := newTestRouter(svc)

	w := perform(router, http.MethodDelete, "/api/v1/attempts/attempt-1/results/cache", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(router, http.MethodDelete, "/api/v1/results/cache", "")
	assert.Equal(t, http.StatusOK, w.Code)

	svc.AssertExpectations(t)
}
