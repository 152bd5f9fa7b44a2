package handlers

import (
	"net/http"
	"time"

	"github.com/SAP-F-2025/sat-results-service/internal/services"
	"github.com/SAP-F-2025/sat-results-service/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const serviceName = "sat-results-service"

type HandlerManager struct {
	resultsHandler *ResultsHandler
	logger         utils.Logger
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		resultsHandler: NewResultsHandler(serviceManager.Results(), logger),
		logger:         logger,
	}
}

// NewRouter builds the engine with recovery, CORS, request IDs and logging
// installed. An empty allowedOrigins list allows every origin.
func (hm *HandlerManager) NewRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", utils.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{utils.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.LoggerMiddleware(hm.logger))
	router.Use(utils.ContextLogger(hm.logger))

	hm.SetupRoutes(router)
	return router
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	{
		attempts := v1.Group("/attempts/:id")
		{
			attempts.GET("/results", hm.resultsHandler.GetResults)
			attempts.GET("/score", hm.resultsHandler.GetScore)
			attempts.GET("/questions", hm.resultsHandler.GetQuestionAnalysis)
			attempts.GET("/analytics", hm.resultsHandler.GetAnalytics)
			attempts.GET("/progress", hm.resultsHandler.GetProgress)
			attempts.DELETE("/results/cache", hm.resultsHandler.InvalidateResults)
		}

		v1.DELETE("/results/cache", hm.resultsHandler.FlushResults)
		v1.POST("/scoring/calculate", hm.resultsHandler.Calculate)
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}
