package services

import (
	"context"

	"daytour/internal/models/db_models"
	"daytour/internal/models/response_models"
	"daytour/internal/repositories"
	"daytour/pkg/utils"

	"go.uber.org/zap"
)

type DestinationServiceInterface interface {
	GetDestinationByID(ctx context.Context, id string) (*response_models.Destination, error)
	ListDestinations(ctx context.Context, page, pageSize int, category, search string) ([]response_models.Destination, error)
}

type DestinationService struct {
	repo repositories.DestinationRepository
	log  *zap.Logger
}

func NewDestinationService(repo repositories.DestinationRepository, log *zap.Logger) DestinationServiceInterface {
	return &DestinationService{repo: repo, log: log}
}

func (s *DestinationService) GetDestinationByID(ctx context.Context, id string) (*response_models.Destination, error) {
	dest, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Error("failed to fetch destination", zap.String("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if dest == nil {
		return nil, utils.ErrDestinationNotFound
	}
	resp := toDestinationResponse(dest)
	return &resp, nil
}

func (s *DestinationService) ListDestinations(ctx context.Context, page, pageSize int, category, search string) ([]response_models.Destination, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	dests, err := s.repo.List(ctx, page, pageSize, category, search)
	if err != nil {
		s.log.Error("failed to list destinations", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	resp := make([]response_models.Destination, 0, len(dests))
	for i := range dests {
		resp = append(resp, toDestinationResponse(&dests[i]))
	}
	return resp, nil
}

func toDestinationResponse(dest *db_models.Destination) response_models.Destination {
	return response_models.Destination{
		ID:           dest.ID.String(),
		Name:         dest.Name,
		Category:     dest.Category,
		Tags:         dest.Tags,
		Latitude:     dest.Latitude,
		Longitude:    dest.Longitude,
		Address:      dest.Address,
		Price:        dest.Price,
		OpeningHours: dest.OpeningHours,
		VisitMinutes: dest.VisitMinutes,
		Facilities:   dest.Facilities,
		AvgRating:    dest.AvgRating,
	}
}
