package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/growplate/backend/internal/middleware"
)

// RateLimitHandler reports a caller's remaining meal-plan quota.
type RateLimitHandler struct {
	limiter *middleware.RateLimiter
}

func NewRateLimitHandler(limiter *middleware.RateLimiter) *RateLimitHandler {
	return &RateLimitHandler{limiter: limiter}
}

func (h *RateLimitHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/meal-plan", h.MealPlan)
}

func (h *RateLimitHandler) MealPlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	quota, err := h.limiter.Remaining(c.Request.Context(), userID.String())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, middleware.ErrorResponse{Error: "failed to check rate limit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":      quota.Limit,
		"remaining":  quota.Remaining,
		"reset_time": quota.ResetAt.Unix(),
		"window":     "1h",
	})
}
