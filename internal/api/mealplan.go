package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/growplate/backend/internal/mealplan"
	"github.com/pageza/growplate/backend/internal/service"
	"github.com/pageza/growplate/backend/internal/types"
)

// MealPlanHandler serves high-calorie suggestions and logs the ones a
// caregiver accepts.
type MealPlanHandler struct {
	planner               mealplan.Service
	nutrition             service.INutritionService
	location              *time.Location
	defaultTargetCalories int
	logger                *zap.Logger
}

func NewMealPlanHandler(planner mealplan.Service, nutrition service.INutritionService, location *time.Location, defaultTargetCalories int, logger *zap.Logger) *MealPlanHandler {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MealPlanHandler{
		planner:               planner,
		nutrition:             nutrition,
		location:              location,
		defaultTargetCalories: defaultTargetCalories,
		logger:                logger,
	}
}

// RegisterRoutes mounts the handlers on group. limit, when non-nil, guards
// the suggestion endpoints.
func (h *MealPlanHandler) RegisterRoutes(group *gin.RouterGroup, limit gin.HandlerFunc) {
	planning := []gin.HandlerFunc{}
	if limit != nil {
		planning = append(planning, limit)
	}
	group.GET("/suggestions", append(planning, h.Suggestions)...)
	group.GET("/daily", append(planning, h.Daily)...)
	group.POST("/accept", h.Accept)
}

// Suggestions ranks the catalog for one meal slot.
func (h *MealPlanHandler) Suggestions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	target, err := intQuery(c, "target_calories", h.defaultTargetCalories)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	current, err := intQuery(c, "current_calories", 0)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	mealType, err := mealplan.ParseMealType(c.Query("meal_type"))
	if err != nil {
		respondError(c, err)
		return
	}

	suggestions, err := h.planner.SlotSuggestions(c.Request.Context(), userID, target, current, mealType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Daily plans every slot of ?date= against the calories already logged that day.
func (h *MealPlanHandler) Daily(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	target, err := intQuery(c, "target_calories", h.defaultTargetCalories)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	date, err := dateQuery(c, "date", h.location)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	plan, err := h.planner.DailyPlan(c.Request.Context(), userID, target, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Accept records a chosen suggestion as a nutrition entry.
func (h *MealPlanHandler) Accept(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.AcceptSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	mealType, err := mealplan.ParseMealType(req.MealType)
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.nutrition.AcceptSuggestion(c.Request.Context(), userID, mealType, req.Date, req.Suggestion)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("suggestion accepted",
		zap.String("user_id", userID.String()),
		zap.String("food_name", entry.FoodName),
		zap.String("meal_type", string(mealType)),
	)
	c.JSON(http.StatusCreated, entry)
}
