package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ironlog/cmd/fx/auth_fx"
	"ironlog/cmd/fx/db_fx"
	"ironlog/cmd/fx/nutrition_fx"
	"ironlog/cmd/fx/plan_fx"
	"ironlog/cmd/fx/weight_fx"
	"ironlog/cmd/fx/workout_fx"
	"ironlog/internal/api/controllers"
	"ironlog/internal/config"
	"ironlog/internal/infra"
	"ironlog/pkg/logger"
	"ironlog/pkg/middleware"
	"ironlog/pkg/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Server.Env); err != nil {
		log.Fatalf("logger init error: %v", err)
	}

	app := fx.New(
		fx.Supply(cfg),
		db_fx.Module,
		auth_fx.Module,
		workout_fx.Module,
		weight_fx.Module,
		nutrition_fx.Module,
		plan_fx.Module,

		fx.Provide(controllers.NewHealthController),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, db *gorm.DB) {
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				zap.L().Info("starting HTTP server", zap.String("port", cfg.Server.Port))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					zap.L().Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zap.L().Info("stopping HTTP server")
			defer infra.ClosePostgresql(db)
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	tokens *utils.JWTManager,
	authController *controllers.AuthController,
	workoutController *controllers.WorkoutController,
	weightController *controllers.WeightController,
	nutritionController *controllers.NutritionController,
	planController *controllers.PlanController,
	healthController *controllers.HealthController) *gin.Engine {

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.HTTPMetrics())

	RegisterRoutes(r, tokens,
		authController, workoutController, weightController,
		nutritionController, planController, healthController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tokens *utils.JWTManager,
	authController *controllers.AuthController,
	workoutController *controllers.WorkoutController,
	weightController *controllers.WeightController,
	nutritionController *controllers.NutritionController,
	planController *controllers.PlanController,
	healthController *controllers.HealthController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.GET("/me", middleware.JWTAuthMiddleware(tokens), authController.Me)

	apiGroup := r.Group("/api")
	apiGroup.GET("/workout-plan", planController.GeneratePlan)
	apiGroup.GET("/plan/:userId", planController.GetPlan)

	apiGroup.POST("/workout-log", workoutController.CreateWorkoutLog)
	apiGroup.GET("/workout-log/:userId", workoutController.GetWorkoutLogs)
	apiGroup.DELETE("/workout-log/:id", workoutController.DeleteWorkoutLog)

	apiGroup.POST("/weight", weightController.SubmitWeight)
	apiGroup.GET("/weight/:userId", weightController.GetWeightEntries)
	apiGroup.DELETE("/weight/:id", weightController.DeleteWeightEntry)

	apiGroup.POST("/nutrition", nutritionController.LogMeal)
	apiGroup.POST("/nutrition/estimate", nutritionController.EstimateMeal)
	apiGroup.GET("/nutrition/:userId", nutritionController.GetEntries)
	apiGroup.GET("/nutrition/:userId/daily-totals", nutritionController.GetDailyTotals)
	apiGroup.DELETE("/nutrition/:id", nutritionController.DeleteEntry)

	r.GET("/health", healthController.Health)
	r.GET("/metrics", gin.WrapH(middleware.PrometheusHandler()))
}
