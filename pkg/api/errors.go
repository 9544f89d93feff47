package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intakehq/intake/pkg/lifecycle"
	"github.com/intakehq/intake/pkg/models"
)

// abortWithError maps domain errors onto HTTP status codes. Unknown errors
// become 500 with a generic message; details stay in the logs.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
	case errors.Is(err, lifecycle.ErrNotAwaitingClarification):
		c.JSON(http.StatusConflict, gin.H{"error": "job is not awaiting clarification"})
	case errors.Is(err, lifecycle.ErrClarificationConsumed):
		c.JSON(http.StatusConflict, gin.H{"error": "clarification already provided for this job"})
	case errors.Is(err, models.ErrBadEnvelope):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
