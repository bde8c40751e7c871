package recommend_fx

import (
	"os"

	"daytour/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideDistanceService, provideScoringEngine, provideHybridRanker)

func provideDistanceService() services.DistanceServiceInterface {
	return services.NewDistanceService(nil)
}

func provideScoringEngine() services.ScoringEngineInterface {
	return services.NewScoringEngine(services.DefaultScoringWeights())
}

func provideHybridRanker(
	scoring services.ScoringEngineInterface,
	cf services.CFServiceInterface,
	log *zap.Logger,
) services.HybridRankerInterface {
	cfEnabled := os.Getenv("CF_ENABLED") != "false"
	return services.NewHybridRanker(scoring, cf, cfEnabled, log)
}
