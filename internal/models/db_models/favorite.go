package db_models

import "github.com/google/uuid"

type Favorite struct {
	BaseModel
	UserID        uuid.UUID `gorm:"type:uuid;not null;index:idx_fav_user_dest,unique"`
	DestinationID uuid.UUID `gorm:"type:uuid;not null;index:idx_fav_user_dest,unique"`

	Destination Destination `gorm:"foreignKey:DestinationID"`
}
