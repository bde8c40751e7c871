package request_models

import "github.com/google/uuid"

type RateDestinationRequest struct {
	UserID        uuid.UUID `json:"user_id" binding:"required"`
	DestinationID uuid.UUID `json:"destination_id" binding:"required"`
	Rating        float64   `json:"rating" binding:"required,min=1,max=5"`
	Comment       string    `json:"comment"`
}

type LogVisitRequest struct {
	UserID          uuid.UUID `json:"user_id" binding:"required"`
	DestinationID   uuid.UUID `json:"destination_id" binding:"required"`
	Completed       bool      `json:"completed"`
	DurationMinutes int       `json:"duration_minutes"`
}

type FavoriteRequest struct {
	UserID        uuid.UUID `json:"user_id" binding:"required"`
	DestinationID uuid.UUID `json:"destination_id" binding:"required"`
}
