package services

import (
	"context"
	"testing"

	"daytour/internal/models/db_models"
	"daytour/pkg/logger"
	"daytour/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDestinationByIDNotFound(t *testing.T) {
	svc := NewDestinationService(&fakeDestinationRepo{}, logger.NewTestLogger(t))

	_, err := svc.GetDestinationByID(context.Background(), destX.String())
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestGetDestinationByIDMapsFields(t *testing.T) {
	dest := db_models.Destination{
		BaseModel:    db_models.BaseModel{ID: destX},
		Name:         "Museum",
		Category:     "cultural",
		Tags:         []string{"history"},
		Latitude:     10.78,
		Longitude:    106.70,
		Price:        40000,
		OpeningHours: "08:00-17:00",
		VisitMinutes: 90,
		AvgRating:    4.2,
		IsActive:     true,
	}
	svc := NewDestinationService(&fakeDestinationRepo{dests: []db_models.Destination{dest}}, logger.NewTestLogger(t))

	resp, err := svc.GetDestinationByID(context.Background(), destX.String())
	require.NoError(t, err)

	assert.Equal(t, destX.String(), resp.ID)
	assert.Equal(t, "Museum", resp.Name)
	assert.Equal(t, []string{"history"}, resp.Tags)
	assert.Equal(t, 40000, resp.Price)
	assert.Equal(t, 4.2, resp.AvgRating)
}

func TestListDestinationsValidatesPaging(t *testing.T) {
	svc := NewDestinationService(&fakeDestinationRepo{}, logger.NewTestLogger(t))

	_, err := svc.ListDestinations(context.Background(), 0, 20, "", "")
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.ListDestinations(context.Background(), 1, 0, "", "")
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.ListDestinations(context.Background(), 1, 101, "", "")
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestListDestinationsReturnsResponses(t *testing.T) {
	dests := []db_models.Destination{
		{BaseModel: db_models.BaseModel{ID: destX}, Name: "A", IsActive: true},
		{BaseModel: db_models.BaseModel{ID: destY}, Name: "B", IsActive: true},
	}
	svc := NewDestinationService(&fakeDestinationRepo{dests: dests}, logger.NewTestLogger(t))

	resp, err := svc.ListDestinations(context.Background(), 1, 20, "", "")
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "A", resp[0].Name)
}
