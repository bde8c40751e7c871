package db_models

import "github.com/google/uuid"

type VisitLog struct {
	BaseModel
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	DestinationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Completed       bool
	DurationMinutes int

	Destination Destination `gorm:"foreignKey:DestinationID"`
}
