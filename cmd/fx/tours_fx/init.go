package tours_fx

import (
	"os"
	"strconv"
	"time"

	"daytour/internal/repositories"
	"daytour/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(
	provideSolverConfig, provideTourService)

func provideSolverConfig() services.SolverConfig {
	cfg := services.DefaultSolverConfig()
	if v := os.Getenv("SOLVER_TIME_LIMIT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeLimit = time.Duration(ms) * time.Millisecond
		}
	}
	return cfg
}

func provideTourService(
	destinations repositories.DestinationRepository,
	ranker services.HybridRankerInterface,
	scoring services.ScoringEngineInterface,
	distance services.DistanceServiceInterface,
	solverCfg services.SolverConfig,
	log *zap.Logger,
) services.TourServiceInterface {
	optimizer := services.NewRouteOptimizer(distance, solverCfg, log)
	fallback := services.NewGreedyOptimizer(distance, log)

	return services.NewTourService(
		destinations,
		ranker,
		scoring,
		distance,
		optimizer,
		fallback,
		services.DefaultTourConfig(),
		log,
	)
}
