package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ironlog/internal/models/request_models"
	"ironlog/internal/services"
	"ironlog/pkg/utils"
)

type NutritionController struct {
	nutritionService services.NutritionServiceInterface
}

func NewNutritionController(nutritionService services.NutritionServiceInterface) *NutritionController {
	return &NutritionController{
		nutritionService: nutritionService,
	}
}

// LogMeal godoc
// @Summary Record a logged meal
// @Tags Nutrition
// @Accept json
// @Produce json
// @Param request body request_models.CreateNutritionEntryRequest true "Meal payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/nutrition [post]
func (n *NutritionController) LogMeal(c *gin.Context) {
	var req request_models.CreateNutritionEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	entry, err := n.nutritionService.LogMeal(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// GetEntries godoc
// @Summary List a user's nutrition entries, newest first
// @Tags Nutrition
// @Produce json
// @Param userId path string true "User id"
// @Param date query string false "Limit to one day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Router /api/nutrition/{userId} [get]
func (n *NutritionController) GetEntries(c *gin.Context) {
	entries, err := n.nutritionService.GetEntries(
		c.Request.Context(),
		c.Param("userId"),
		c.Query("date"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetDailyTotals godoc
// @Summary Per-day macro totals over a date range
// @Tags Nutrition
// @Produce json
// @Param userId path string true "User id"
// @Param start query string true "Range start (YYYY-MM-DD)"
// @Param end query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Router /api/nutrition/{userId}/daily-totals [get]
func (n *NutritionController) GetDailyTotals(c *gin.Context) {
	totals, err := n.nutritionService.GetDailyTotals(
		c.Request.Context(),
		c.Param("userId"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// EstimateMeal godoc
// @Summary Estimate macros for a meal description
// @Tags Nutrition
// @Accept json
// @Produce json
// @Param request body request_models.EstimateNutritionRequest true "Meal description"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/nutrition/estimate [post]
func (n *NutritionController) EstimateMeal(c *gin.Context) {
	var req request_models.EstimateNutritionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing meal description.")
		return
	}

	estimate, err := n.nutritionService.EstimateMeal(c.Request.Context(), req.Meal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"estimate": estimate})
}

// DeleteEntry godoc
// @Summary Delete a nutrition entry
// @Tags Nutrition
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} map[string]string
// @Router /api/nutrition/{id} [delete]
func (n *NutritionController) DeleteEntry(c *gin.Context) {
	if err := n.nutritionService.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nutrition entry deleted"})
}
