package db_models

import "github.com/lib/pq"

type Destination struct {
	BaseModel
	Name         string
	Category     string
	Tags         pq.StringArray `gorm:"type:text[]"`
	Latitude     float64
	Longitude    float64
	Address      string
	Price        int
	OpeningHours string
	VisitMinutes int
	Facilities   pq.StringArray `gorm:"type:text[]"`
	AvgRating    float64
	IsActive     bool `gorm:"default:true"`

	Ratings   []DestinationRating
	VisitLogs []VisitLog
	Favorites []Favorite
}
