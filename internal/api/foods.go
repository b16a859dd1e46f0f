package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/growplate/backend/internal/service"
	"github.com/pageza/growplate/backend/internal/types"
)

// FoodHandler exposes the calorie table.
type FoodHandler struct {
	nutrition service.INutritionService
}

func NewFoodHandler(nutrition service.INutritionService) *FoodHandler {
	return &FoodHandler{nutrition: nutrition}
}

func (h *FoodHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/search", h.Search)
	group.POST("/estimate", h.Estimate)
}

func (h *FoodHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"foods": h.nutrition.SearchFoods(c.Query("q"))})
}

func (h *FoodHandler) Estimate(c *gin.Context) {
	var req types.EstimateCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "food_name, a positive quantity and unit are required")
		return
	}
	c.JSON(http.StatusOK, h.nutrition.EstimateCalories(req.FoodName, req.Quantity, req.Unit))
}
