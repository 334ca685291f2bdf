package plan_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ironlog/internal/api/controllers"
	"ironlog/internal/config"
	"ironlog/internal/repositories"
	"ironlog/internal/services"
	"ironlog/pkg/utils"
)

var Module = fx.Provide(
	ProvidePlannerClient,
	providePlanRepo,
	providePlanService,
	controllers.NewPlanController)

// ProvidePlannerClient builds the configured text-completion client. No
// API key is not an error: the plan service then serves static plans only.
func ProvidePlannerClient(cfg *config.Config) (utils.PlannerClientInterface, error) {
	if cfg.AI.APIKey == "" {
		zap.L().Info("no AI credential configured, serving static plans")
		return nil, nil
	}

	zap.L().Info("initializing planner client",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", cfg.AI.Model))

	return utils.NewPlannerClient(cfg.AI.Provider, cfg.AI.APIKey, cfg.AI.Model)
}

func providePlanRepo(db *gorm.DB) repositories.WorkoutPlanRepository {
	return repositories.NewWorkoutPlanRepository(db)
}

func providePlanService(planRepo repositories.WorkoutPlanRepository, planner utils.PlannerClientInterface) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, planner)
}
