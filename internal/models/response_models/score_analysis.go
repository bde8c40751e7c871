package response_models

import "daytour/internal/models/request_models"

type DestinationScore struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Price    int      `json:"price"`
	Score    float64  `json:"score"`
}

type ScoreAnalysis struct {
	Success         bool                           `json:"success"`
	UserProfile     request_models.TravelerProfile `json:"user_profile"`
	TopDestinations []DestinationScore             `json:"top_destinations"`
}
