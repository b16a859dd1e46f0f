package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/middleware"
	"github.com/pageza/growplate/backend/internal/service"
)

// respondError maps service and planner errors to HTTP responses. Anything
// unrecognised is recorded on the context for the request logger and hidden
// from the client.
func respondError(c *gin.Context, err error) {
	var entryErr *service.EntryValidationError
	var planErr *mealplan.ValidationError

	switch {
	case errors.As(err, &entryErr):
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: "validation failed", Details: entryErr.Messages})
	case errors.As(err, &planErr):
		c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: planErr.Error()})
	case errors.Is(err, service.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, middleware.ErrorResponse{Error: "entry not found"})
	case errors.Is(err, mealplan.ErrDataUnavailable):
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, middleware.ErrorResponse{Error: "nutrition history is temporarily unavailable"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: msg})
}
