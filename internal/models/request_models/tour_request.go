package request_models

// TravelerProfile describes the traveler a tour is planned for. Budget is in
// integer currency units, AvailableTime in hours.
type TravelerProfile struct {
	Name          string   `json:"name"`
	Category      string   `json:"category" binding:"required"`
	Preferences   []string `json:"preference_tags" binding:"required"`
	Budget        int      `json:"budget" binding:"min=0"`
	AvailableTime int      `json:"available_time_hours" binding:"required,min=1"`
	MaxStops      int      `json:"max_stops"`
}

type StartLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type TourRequest struct {
	UserProfile   TravelerProfile `json:"user_profile" binding:"required"`
	StartLocation *StartLocation  `json:"start_location"`
}
