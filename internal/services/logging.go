package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/SAP-F-2025/sat-results-service/internal/analytics"
	"github.com/SAP-F-2025/sat-results-service/internal/utils"
)

// ServiceLogger provides structured logging for service layer operations
type ServiceLogger struct {
	logger *slog.Logger
	config LogConfig
}

type LogConfig struct {
	Service     string
	Component   string
	EnableDebug bool
}

func NewServiceLogger(logger *slog.Logger, config LogConfig) *ServiceLogger {
	return &ServiceLogger{
		logger: logger.With("service", config.Service, "component", config.Component),
		config: config,
	}
}

// ===== OPERATION LOGGING =====

// operationStatus classifies err into the status label and level used for
// operation logs.
func operationStatus(err error) (string, slog.Level) {
	switch {
	case err == nil:
		return "success", slog.LevelInfo
	case IsNotFound(err):
		return "not_found", slog.LevelInfo
	case IsValidation(err):
		return "validation_error", slog.LevelWarn
	case IsConflict(err):
		return "conflict", slog.LevelWarn
	case IsDataIntegrity(err):
		return "data_integrity_error", slog.LevelError
	default:
		return "error", slog.LevelError
	}
}

func (l *ServiceLogger) LogOperation(ctx context.Context, operation string, attemptID string, duration time.Duration, err error) {
	status, level := operationStatus(err)

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.String("attempt_id", attemptID),
		slog.String("status", status),
		slog.Duration("duration", duration),
	}

	if requestID := utils.RequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))

		var validationErrs ValidationErrors
		var unresolved *analytics.UnresolvedQuestionError
		switch {
		case errors.As(err, &validationErrs):
			attrs = append(attrs, slog.Int("validation_errors_count", len(validationErrs)))
		case errors.As(err, &unresolved):
			attrs = append(attrs,
				slog.String("answer_id", unresolved.AnswerID),
				slog.String("question_id", unresolved.QuestionID))
		}

		if level == slog.LevelError {
			if pc, file, line, ok := runtime.Caller(2); ok {
				if fn := runtime.FuncForPC(pc); fn != nil {
					attrs = append(attrs,
						slog.String("caller_func", fn.Name()),
						slog.String("caller_file", file),
						slog.Int("caller_line", line),
					)
				}
			}
		}
	}

	l.logger.LogAttrs(ctx, level, fmt.Sprintf("%s operation %s", operation, status), attrs...)
}

func (l *ServiceLogger) LogValidationError(ctx context.Context, operation string, validationErrors ValidationErrors) {
	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.Int("error_count", len(validationErrors)),
	}

	for i, err := range validationErrors {
		if i >= 5 {
			break
		}
		attrs = append(attrs, slog.Group(fmt.Sprintf("error_%d", i+1),
			slog.String("field", err.Field),
			slog.String("message", err.Message),
			slog.Any("value", err.Value),
		))
	}

	l.logger.LogAttrs(ctx, slog.LevelWarn, "Validation failed", attrs...)
}

// Debug logs only when debug logging is enabled for the service.
func (l *ServiceLogger) Debug(ctx context.Context, msg string, args ...any) {
	if l.config.EnableDebug {
		l.logger.DebugContext(ctx, msg, args...)
	}
}

func (l *ServiceLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

// ===== OPERATION SCOPE =====

// OperationScope times one service call and logs its outcome.
type OperationScope struct {
	logger    *ServiceLogger
	ctx       context.Context
	operation string
	attemptID string
	startTime time.Time
}

func (l *ServiceLogger) WithOperation(ctx context.Context, operation, attemptID string) *OperationScope {
	return &OperationScope{
		logger:    l,
		ctx:       ctx,
		operation: operation,
		attemptID: attemptID,
		startTime: time.Now(),
	}
}

// SetAttemptID records the attempt once it is known, e.g. after request validation.
func (s *OperationScope) SetAttemptID(attemptID string) {
	s.attemptID = attemptID
}

func (s *OperationScope) LogResult(err error) {
	s.logger.LogOperation(s.ctx, s.operation, s.attemptID, time.Since(s.startTime), err)

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		s.logger.LogValidationError(s.ctx, s.operation, validationErrs)
	}
}
