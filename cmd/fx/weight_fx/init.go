package weight_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ironlog/internal/api/controllers"
	"ironlog/internal/repositories"
	"ironlog/internal/services"
)

var Module = fx.Provide(
	provideWeightRepo,
	provideWeightService,
	controllers.NewWeightController)

func provideWeightRepo(db *gorm.DB) repositories.WeightEntryRepository {
	return repositories.NewWeightEntryRepository(db)
}

func provideWeightService(weightRepo repositories.WeightEntryRepository) services.WeightServiceInterface {
	return services.NewWeightService(weightRepo)
}
