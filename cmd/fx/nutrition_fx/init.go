package nutrition_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ironlog/internal/api/controllers"
	"ironlog/internal/repositories"
	"ironlog/internal/services"
)

var Module = fx.Provide(
	provideNutritionRepo,
	provideNutritionService,
	controllers.NewNutritionController)

func provideNutritionRepo(db *gorm.DB) repositories.NutritionEntryRepository {
	return repositories.NewNutritionEntryRepository(db)
}

func provideNutritionService(nutritionRepo repositories.NutritionEntryRepository) services.NutritionServiceInterface {
	return services.NewNutritionService(nutritionRepo)
}
