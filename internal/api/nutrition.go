package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/growplate/backend/internal/models"
	"github.com/pageza/growplate/backend/internal/service"
	"github.com/pageza/growplate/backend/internal/types"
)

// NutritionHandler serves the nutrition log and its daily summary.
type NutritionHandler struct {
	*EntryHandler[models.NutritionEntry, types.NutritionEntryRequest]
	nutrition service.INutritionService
}

func NewNutritionHandler(nutrition service.INutritionService, location *time.Location) *NutritionHandler {
	return &NutritionHandler{
		EntryHandler: NewEntryHandler[models.NutritionEntry, types.NutritionEntryRequest](nutrition, location),
		nutrition:    nutrition,
	}
}

func (h *NutritionHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/daily", h.Daily)
	h.EntryHandler.RegisterRoutes(group)
}

// Daily totals the calories logged on ?date= (today when omitted).
func (h *NutritionHandler) Daily(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	date, err := dateQuery(c, "date", h.location)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	summary, err := h.nutrition.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
