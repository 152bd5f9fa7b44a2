package services

import (
	"log/slog"

	"github.com/SAP-F-2025/sat-results-service/internal/cache"
	"github.com/SAP-F-2025/sat-results-service/internal/events"
	"github.com/SAP-F-2025/sat-results-service/internal/repositories"
	"github.com/SAP-F-2025/sat-results-service/internal/validator"
)

// ServiceManager exposes the services the HTTP layer depends on.
type ServiceManager interface {
	Results() ResultsService
}

type serviceManager struct {
	results ResultsService
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
	config ResultsConfig,
) ServiceManager {
	return &serviceManager{
		results: NewResultsService(repo, cacheService, publisher, validator, logger, config),
	}
}

func (m *serviceManager) Results() ResultsService {
	return m.results
}
