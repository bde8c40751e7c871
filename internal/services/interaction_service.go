package services

import (
	"context"

	"daytour/internal/models/db_models"
	"daytour/internal/models/request_models"
	"daytour/internal/models/response_models"
	"daytour/internal/repositories"
	"daytour/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InteractionServiceInterface interface {
	RateDestination(ctx context.Context, req request_models.RateDestinationRequest) error
	LogVisit(ctx context.Context, req request_models.LogVisitRequest) error
	FavoriteDestination(ctx context.Context, req request_models.FavoriteRequest) error
	GetUserActivity(ctx context.Context, userID uuid.UUID) (response_models.UserActivity, error)
}

type InteractionService struct {
	interactions repositories.InteractionRepository
	destinations repositories.DestinationRepository
	cf           CFServiceInterface
	log          *zap.Logger
}

func NewInteractionService(
	interactions repositories.InteractionRepository,
	destinations repositories.DestinationRepository,
	cf CFServiceInterface,
	log *zap.Logger,
) InteractionServiceInterface {
	return &InteractionService{
		interactions: interactions,
		destinations: destinations,
		cf:           cf,
		log:          log,
	}
}

func (s *InteractionService) RateDestination(ctx context.Context, req request_models.RateDestinationRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return utils.ErrInvalidInput
	}
	if err := s.checkDestination(ctx, req.DestinationID); err != nil {
		return err
	}

	rating := &db_models.DestinationRating{
		UserID:        req.UserID,
		DestinationID: req.DestinationID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.interactions.UpsertRating(ctx, rating); err != nil {
		s.log.Error("failed to upsert rating",
			zap.String("user_id", req.UserID.String()),
			zap.String("destination_id", req.DestinationID.String()),
			zap.Error(err),
		)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *InteractionService) LogVisit(ctx context.Context, req request_models.LogVisitRequest) error {
	if req.DurationMinutes < 0 {
		return utils.ErrInvalidInput
	}
	if err := s.checkDestination(ctx, req.DestinationID); err != nil {
		return err
	}

	visit := &db_models.VisitLog{
		UserID:          req.UserID,
		DestinationID:   req.DestinationID,
		Completed:       req.Completed,
		DurationMinutes: req.DurationMinutes,
	}
	if err := s.interactions.CreateVisit(ctx, visit); err != nil {
		s.log.Error("failed to log visit",
			zap.String("user_id", req.UserID.String()),
			zap.String("destination_id", req.DestinationID.String()),
			zap.Error(err),
		)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *InteractionService) FavoriteDestination(ctx context.Context, req request_models.FavoriteRequest) error {
	if err := s.checkDestination(ctx, req.DestinationID); err != nil {
		return err
	}

	favorite := &db_models.Favorite{
		UserID:        req.UserID,
		DestinationID: req.DestinationID,
	}
	if err := s.interactions.CreateFavorite(ctx, favorite); err != nil {
		s.log.Error("failed to create favorite",
			zap.String("user_id", req.UserID.String()),
			zap.String("destination_id", req.DestinationID.String()),
			zap.Error(err),
		)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *InteractionService) GetUserActivity(ctx context.Context, userID uuid.UUID) (response_models.UserActivity, error) {
	level, weight, counts, err := s.cf.ActivityLevel(ctx, userID)
	if err != nil {
		s.log.Error("failed to load user activity", zap.String("user_id", userID.String()), zap.Error(err))
		return response_models.UserActivity{}, utils.ErrDatabaseError
	}

	return response_models.UserActivity{
		RatingCount:       int(counts.Ratings),
		VisitCount:        int(counts.Visits),
		FavoriteCount:     int(counts.Favorites),
		TotalInteractions: int(counts.Ratings + counts.Visits + counts.Favorites),
		ActivityLevel:     level,
		RecommendedWeight: weight,
	}, nil
}

func (s *InteractionService) checkDestination(ctx context.Context, id uuid.UUID) error {
	dest, err := s.destinations.GetByID(ctx, id.String())
	if err != nil {
		return utils.ErrDatabaseError
	}
	if dest == nil {
		return utils.ErrDestinationNotFound
	}
	return nil
}
