package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"ironlog/internal/api/controllers"
	"ironlog/internal/config"
	"ironlog/internal/repositories"
	"ironlog/internal/services"
	"ironlog/pkg/utils"
)

var Module = fx.Provide(
	provideJWTManager,
	provideUserRepo,
	provideAuthService,
	controllers.NewAuthController)

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAuthService(userRepo repositories.UserRepository, tokens *utils.JWTManager) services.AuthServiceInterface {
	return services.NewAuthService(userRepo, tokens)
}
