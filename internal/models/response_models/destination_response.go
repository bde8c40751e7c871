package response_models

type Destination struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Address      string   `json:"address,omitempty"`
	Price        int      `json:"price"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	VisitMinutes int      `json:"visit_minutes"`
	Facilities   []string `json:"facilities,omitempty"`
	AvgRating    float64  `json:"avg_rating"`
}
