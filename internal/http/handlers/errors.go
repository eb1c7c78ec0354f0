package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fortunegablin-rgb/PSC170/internal/domain"
)

// RespondDomainError maps domain errors to HTTP responses, carrying the
// extra fields the conductor UI reads (remaining cooldown, balance figures).
func RespondDomainError(c *gin.Context, err error) {
	var dup domain.DuplicateDeductionError
	if errors.As(err, &dup) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":                      dup.Error(),
			"cooldown_remaining_seconds": dup.RetryAfterSeconds,
		})
		return
	}

	var insufficient domain.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":           insufficient.Error(),
			"current_balance": insufficient.Balance,
			"required":        insufficient.Required,
		})
		return
	}

	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
	case domain.IsUnauthorized(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
