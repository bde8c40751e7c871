package destinations_fx

import (
	"daytour/internal/repositories"
	"daytour/internal/services"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideDestinationRepo, provideDestinationService)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideDestinationService(repo repositories.DestinationRepository, log *zap.Logger) services.DestinationServiceInterface {
	return services.NewDestinationService(repo, log)
}
