package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ironlog/internal/services"
	"ironlog/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a one-week workout plan
// @Description Uses the configured AI provider when available, otherwise a static plan. With userId the plan is saved for that user.
// @Tags Plans
// @Produce json
// @Param goal query string false "Fitness goal" default(general fitness)
// @Param experience query string false "Experience level" default(beginner)
// @Param userId query string false "User id to save the plan for"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/workout-plan [get]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	plan, err := p.planService.GeneratePlan(
		c.Request.Context(),
		c.Query("goal"),
		c.Query("experience"),
		c.Query("userId"),
	)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// GetPlan godoc
// @Summary Fetch a user's saved workout plan
// @Tags Plans
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/plan/{userId} [get]
func (p *PlanController) GetPlan(c *gin.Context) {
	plan, err := p.planService.GetPlan(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
