package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ironlog/internal/models/request_models"
	"ironlog/internal/services"
	"ironlog/pkg/utils"
)

type WeightController struct {
	weightService services.WeightServiceInterface
}

func NewWeightController(weightService services.WeightServiceInterface) *WeightController {
	return &WeightController{
		weightService: weightService,
	}
}

// SubmitWeight godoc
// @Summary Record a body-weight measurement
// @Description One entry per user per day; resubmitting overwrites the day's weight
// @Tags Weight
// @Accept json
// @Produce json
// @Param request body request_models.CreateWeightEntryRequest true "Weight payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/weight [post]
func (w *WeightController) SubmitWeight(c *gin.Context) {
	var req request_models.CreateWeightEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	entry, err := w.weightService.SubmitWeight(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

// GetWeightEntries godoc
// @Summary List a user's weight entries, oldest first
// @Tags Weight
// @Produce json
// @Param userId path string true "User id"
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Router /api/weight/{userId} [get]
func (w *WeightController) GetWeightEntries(c *gin.Context) {
	entries, err := w.weightService.GetWeightEntries(
		c.Request.Context(),
		c.Param("userId"),
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// DeleteWeightEntry godoc
// @Summary Delete a weight entry
// @Tags Weight
// @Produce json
// @Param id path string true "Entry id"
// @Success 200 {object} map[string]string
// @Router /api/weight/{id} [delete]
func (w *WeightController) DeleteWeightEntry(c *gin.Context) {
	if err := w.weightService.DeleteWeightEntry(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weight entry deleted"})
}
