package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ironlog/internal/models/request_models"
	"ironlog/internal/services"
	"ironlog/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{
		workoutService: workoutService,
	}
}

// CreateWorkoutLog godoc
// @Summary Record a completed workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param request body request_models.CreateWorkoutLogRequest true "Workout payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/workout-log [post]
func (w *WorkoutController) CreateWorkoutLog(c *gin.Context) {
	var req request_models.CreateWorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	log, err := w.workoutService.CreateWorkoutLog(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Workout logged",
		"workoutLog": log,
	})
}

// GetWorkoutLogs godoc
// @Summary List a user's workouts, newest first
// @Tags Workouts
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} map[string]interface{}
// @Router /api/workout-log/{userId} [get]
func (w *WorkoutController) GetWorkoutLogs(c *gin.Context) {
	logs, err := w.workoutService.GetWorkoutLogs(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DeleteWorkoutLog godoc
// @Summary Delete a workout log and its exercises
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout log id"
// @Success 200 {object} map[string]string
// @Router /api/workout-log/{id} [delete]
func (w *WorkoutController) DeleteWorkoutLog(c *gin.Context) {
	if err := w.workoutService.DeleteWorkoutLog(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout log deleted"})
}
