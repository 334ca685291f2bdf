package workout_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ironlog/internal/api/controllers"
	"ironlog/internal/repositories"
	"ironlog/internal/services"
)

var Module = fx.Provide(
	provideWorkoutRepo,
	provideWorkoutService,
	controllers.NewWorkoutController)

func provideWorkoutRepo(db *gorm.DB) repositories.WorkoutLogRepository {
	return repositories.NewWorkoutLogRepository(db)
}

func provideWorkoutService(workoutRepo repositories.WorkoutLogRepository) services.WorkoutServiceInterface {
	return services.NewWorkoutService(workoutRepo)
}
