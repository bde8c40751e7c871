package repositories

import (
	"context"
	"errors"

	"daytour/internal/models/db_models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingRow, VisitCountRow and FavoriteRow are the flat projections the
// collaborative-filtering engine consumes when building its matrix.
type RatingRow struct {
	UserID        uuid.UUID
	DestinationID uuid.UUID
	Rating        float64
}

type VisitCountRow struct {
	UserID        uuid.UUID
	DestinationID uuid.UUID
	VisitCount    int
}

type FavoriteRow struct {
	UserID        uuid.UUID
	DestinationID uuid.UUID
}

type ActivityCounts struct {
	Ratings   int64
	Visits    int64
	Favorites int64
}

type InteractionRepository interface {
	UpsertRating(ctx context.Context, rating *db_models.DestinationRating) error
	CreateVisit(ctx context.Context, visit *db_models.VisitLog) error
	CreateFavorite(ctx context.Context, favorite *db_models.Favorite) error

	ListRatings(ctx context.Context) ([]RatingRow, error)
	ListCompletedVisitCounts(ctx context.Context) ([]VisitCountRow, error)
	ListFavorites(ctx context.Context) ([]FavoriteRow, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (ActivityCounts, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) UpsertRating(ctx context.Context, rating *db_models.DestinationRating) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "destination_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).
		Create(rating).Error
}

func (r *interactionRepository) CreateVisit(ctx context.Context, visit *db_models.VisitLog) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *interactionRepository) CreateFavorite(ctx context.Context, favorite *db_models.Favorite) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

func (r *interactionRepository) ListRatings(ctx context.Context) ([]RatingRow, error) {
	var rows []RatingRow
	err := r.db.WithContext(ctx).
		Model(&db_models.DestinationRating{}).
		Select("user_id", "destination_id", "rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interactionRepository) ListCompletedVisitCounts(ctx context.Context) ([]VisitCountRow, error) {
	var rows []VisitCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.VisitLog{}).
		Select("user_id", "destination_id", "COUNT(id) AS visit_count").
		Where("completed = true").
		Group("user_id").
		Group("destination_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interactionRepository) ListFavorites(ctx context.Context) ([]FavoriteRow, error) {
	var rows []FavoriteRow
	err := r.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Select("user_id", "destination_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *interactionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (ActivityCounts, error) {
	var counts ActivityCounts

	err := r.db.WithContext(ctx).
		Model(&db_models.DestinationRating{}).
		Where("user_id = ?", userID).
		Count(&counts.Ratings).Error
	if err != nil {
		return ActivityCounts{}, err
	}

	err = r.db.WithContext(ctx).
		Model(&db_models.VisitLog{}).
		Where("user_id = ? AND completed = true", userID).
		Count(&counts.Visits).Error
	if err != nil {
		return ActivityCounts{}, err
	}

	err = r.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&counts.Favorites).Error
	if err != nil {
		return ActivityCounts{}, err
	}

	return counts, nil
}
