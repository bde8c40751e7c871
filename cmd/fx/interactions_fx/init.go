package interactions_fx

import (
	"daytour/internal/repositories"
	"daytour/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideInteractionRepo, provideCFService, provideInteractionService)

func provideInteractionRepo(db *gorm.DB) repositories.InteractionRepository {
	return repositories.NewInteractionRepository(db)
}

func provideCFService(interactions repositories.InteractionRepository, log *zap.Logger) services.CFServiceInterface {
	return services.NewCFService(interactions, log)
}

func provideInteractionService(
	interactions repositories.InteractionRepository,
	destinations repositories.DestinationRepository,
	cf services.CFServiceInterface,
	log *zap.Logger,
) services.InteractionServiceInterface {
	return services.NewInteractionService(interactions, destinations, cf, log)
}
