package db_models

import "github.com/google/uuid"

type DestinationRating struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_rating_user_dest,unique"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;index:idx_rating_user_dest,unique"`
	Rating        float64   `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment       string    `gorm:"type:text"`

	Destination Destination `gorm:"foreignKey:DestinationID"`
}
