package repositories

import (
	"context"
	"errors"

	"daytour/internal/models/db_models"

	"gorm.io/gorm"
)

type DestinationRepository interface {
	GetByID(ctx context.Context, id string) (*db_models.Destination, error)
	ListActive(ctx context.Context) ([]db_models.Destination, error)
	List(ctx context.Context, page, pageSize int, category, search string) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

// ────────────────────────────────────────────────────────────────
// Read helpers follow the same pattern: default value + nil error
// when no rows are found.
// ────────────────────────────────────────────────────────────────

func (r *destinationRepository) GetByID(ctx context.Context, id string) (*db_models.Destination, error) {
	var dest db_models.Destination
	err := r.db.WithContext(ctx).
		First(&dest, "id = ? AND is_active = true", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}

func (r *destinationRepository) ListActive(ctx context.Context) ([]db_models.Destination, error) {
	var dests []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("is_active = true").
		Order("created_at").
		Find(&dests).Error
	if err != nil {
		return nil, err
	}
	return dests, nil
}

func (r *destinationRepository) List(ctx context.Context, page, pageSize int, category, search string) ([]db_models.Destination, error) {
	var dests []db_models.Destination
	offset := (page - 1) * pageSize

	query := r.db.WithContext(ctx).Where("is_active = true")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name ILIKE ? OR address ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	err := query.
		Order("created_at").
		Offset(offset).
		Limit(pageSize).
		Find(&dests).Error
	if err != nil {
		return nil, err
	}
	return dests, nil
}
