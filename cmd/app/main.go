package main

import (
	"context"
	"log"
	"os"

	"daytour/cmd/fx/controllers_fx"
	"daytour/cmd/fx/db_fx"
	"daytour/cmd/fx/destinations_fx"
	"daytour/cmd/fx/interactions_fx"
	"daytour/cmd/fx/recommend_fx"
	"daytour/cmd/fx/tours_fx"
	"daytour/internal/api/controllers"
	"daytour/pkg/logger"
	"daytour/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		fx.Provide(ProvideLogger),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),

		db_fx.Module,
		destinations_fx.Module,
		interactions_fx.Module,
		recommend_fx.Module,
		tours_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger() *zap.Logger {
	return logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Info("Starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	toursController *controllers.ToursController,
	destinationsController *controllers.DestinationsController,
	interactionsController *controllers.InteractionsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.OptionalIdentityMiddleware())

	RegisterRoutes(r, toursController, destinationsController, interactionsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	toursController *controllers.ToursController,
	destinationsController *controllers.DestinationsController,
	interactionsController *controllers.InteractionsController) {

	toursGroup := r.Group("/tours")
	toursGroup.POST("/recommend", toursController.RecommendTour)
	toursGroup.POST("/analyze-scores", toursController.AnalyzeScores)
	toursGroup.POST("/quick-recommend", toursController.QuickRecommend)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/:id", destinationsController.GetDestinationById)

	interactionsGroup := r.Group("/interactions")
	interactionsGroup.POST("/ratings", interactionsController.RateDestination)
	interactionsGroup.POST("/visits", interactionsController.LogVisit)
	interactionsGroup.POST("/favorites", interactionsController.FavoriteDestination)
	interactionsGroup.GET("/activity/:userId", interactionsController.GetUserActivity)
}
