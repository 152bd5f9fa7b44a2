package handlers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/SAP-F-2025/sat-results-service/internal/errors"
	"github.com/SAP-F-2025/sat-results-service/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeAttemptNotFound    = "ATTEMPT_NOT_FOUND"
	CodeAttemptIncomplete  = "ATTEMPT_NOT_COMPLETED"
	CodeResultsUnavailable = "RESULTS_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// ParseStringIDParam returns the trimmed path parameter, or responds 400 and
// returns "" when it is blank.
func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
			Code:    CodeInvalidRequest,
		})
		return ""
	}
	return idStr
}

// handleServiceError maps service errors onto HTTP responses.
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		h.RespondWithError(c, http.StatusBadRequest, CodeValidationFailed, "Validation failed", err, validationDetails(err))
	case services.IsNotFound(err):
		h.RespondWithError(c, http.StatusNotFound, CodeAttemptNotFound, "Attempt not found", err)
	case services.IsConflict(err):
		h.RespondWithError(c, http.StatusConflict, CodeAttemptIncomplete, "Attempt is not completed yet", err)
	case services.IsDataIntegrity(err):
		h.RespondWithError(c, http.StatusUnprocessableEntity, CodeResultsUnavailable, "Could not load results", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, CodeInternal, "Internal server error", err)
	}
}

func validationDetails(err error) interface{} {
	var errs apperrors.ValidationErrors
	if errors.As(err, &errs) {
		return errs
	}
	var single *apperrors.ValidationError
	if errors.As(err, &single) {
		return apperrors.ValidationErrors{*single}
	}
	return err.Error()
}
