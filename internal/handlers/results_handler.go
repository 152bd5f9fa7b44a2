package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/sat-results-service/internal/services"
	"github.com/SAP-F-2025/sat-results-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	BaseHandler
	resultsService services.ResultsService
}

func NewResultsHandler(resultsService services.ResultsService, logger utils.Logger) *ResultsHandler {
	return &ResultsHandler{
		BaseHandler:    NewBaseHandler(logger),
		resultsService: resultsService,
	}
}

// GetResults returns the comprehensive report of a completed attempt
// @Summary Get attempt results
// @Tags results
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} SuccessResponse{data=models.ComprehensiveResults}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /attempts/{id}/results [get]
func (h *ResultsHandler) GetResults(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "id")
	if attemptID == "" {
		return
	}

	h.LogRequest(c, "Getting attempt results", "attempt_id", attemptID)

	results, err := h.resultsService.GetComprehensiveResults(c.Request.Context(), attemptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Results retrieved successfully", results)
}

// GetScore returns only the scaled score
// @Router /attempts/{id}/score [get]
func (h *ResultsHandler) GetScore(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "id")
	if attemptID == "" {
		return
	}

	score, err := h.resultsService.GetDetailedScore(c.Request.Context(), attemptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Score retrieved successfully", score)
}

// GetQuestionAnalysis returns per-question review rows ordered by question number
// @Router /attempts/{id}/questions [get]
func (h *ResultsHandler) GetQuestionAnalysis(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "id")
	if attemptID == "" {
		return
	}

	analysis, err := h.resultsService.GetQuestionAnalysis(c.Request.Context(), attemptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Question analysis retrieved successfully", analysis)
}

// GetAnalytics returns accuracy, timing, difficulty and topic breakdowns
// @Router /attempts/{id}/analytics [get]
func (h *ResultsHandler) GetAnalytics(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "id")
	if attemptID == "" {
		return
	}

	perf, err := h.resultsService.GetPerformanceAnalytics(c.Request.Context(), attemptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Performance analytics retrieved successfully", perf)
}

// GetProgress compares the attempt with the user's previous completed attempt
// @Router /attempts/{id}/progress [get]
func (h *ResultsHandler) GetProgress(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "id")
	if attemptID == "" {
		return
	}

	progress, err := h.resultsService.GetProgress(c.Request.Context(), attemptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	if progress == nil {
		h.RespondWithSuccess(c, http.StatusOK, "No previous attempts", nil)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Progress retrieved successfully", progress)
}

// InvalidateResults drops the cached report so the next read recomputes it
// @Router /attempts/{id}/results/cache [delete]
func (h *ResultsHandler) InvalidateResults(c *gin.Context) {
	attemptID := ParseStringIDParam(c, "id")
	if attemptID == "" {
		return
	}

	h.LogRequest(c, "Invalidating cached results", "attempt_id", attemptID)

	if err := h.resultsService.InvalidateResults(c.Request.Context(), attemptID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Cached results invalidated", gin.H{"attempt_id": attemptID})
}

// FlushResults drops every cached report
// @Router /results/cache [delete]
func (h *ResultsHandler) FlushResults(c *gin.Context) {
	h.LogRequest(c, "Flushing cached results")

	if err := h.resultsService.FlushResults(c.Request.Context()); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Cached results flushed", nil)
}

// Calculate scores a caller-supplied answer set without reading or writing storage
// @Summary Score an answer set
// @Tags scoring
// @Accept json
// @Produce json
// @Param request body services.ScoreRequest true "Answers to score"
// @Success 200 {object} SuccessResponse{data=models.ComprehensiveResults}
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /scoring/calculate [post]
func (h *ResultsHandler) Calculate(c *gin.Context) {
	var req services.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, CodeInvalidRequest, "Invalid request payload", err, err.Error())
		return
	}

	h.LogRequest(c, "Scoring answer set", "answers", len(req.Answers))

	results, err := h.resultsService.CalculateFromAnswers(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.RespondWithSuccess(c, http.StatusOK, "Results calculated successfully", results)
}
