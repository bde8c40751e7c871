package response_models

// RouteStop is one visited destination in the final itinerary. ArrivalTime is
// the offset in minutes from the start of the tour.
type RouteStop struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Address      string   `json:"address,omitempty"`
	Price        int      `json:"price"`
	VisitTime    int      `json:"visit_time"`
	TravelTime   int      `json:"travel_time"`
	ArrivalTime  int      `json:"arrival_time"`
	Score        float64  `json:"score"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Facilities   []string `json:"facilities,omitempty"`
}

const (
	OptimizerConstraint = "constraint_solver"
	OptimizerHeuristic  = "heuristic"
)

type TourResult struct {
	Success        bool        `json:"success"`
	Route          []RouteStop `json:"route"`
	TotalLocations int         `json:"total_locations"`
	TotalTime      int         `json:"total_time"`
	TotalDistance  float64     `json:"total_distance"`
	TotalCost      int         `json:"total_cost"`
	TotalScore     float64     `json:"total_score"`
	AvgScore       float64     `json:"avg_score"`
	OptimizerUsed  string      `json:"optimizer_used,omitempty"`
	Note           string      `json:"note,omitempty"`
	Message        string      `json:"message,omitempty"`
}
