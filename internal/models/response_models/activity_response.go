package response_models

// UserActivity summarizes how much interaction history a traveler has and the
// collaborative-filtering weight their history earns them.
type UserActivity struct {
	RatingCount       int     `json:"rating_count"`
	VisitCount        int     `json:"visit_count"`
	FavoriteCount     int     `json:"favorite_count"`
	TotalInteractions int     `json:"total_interactions"`
	ActivityLevel     string  `json:"activity_level"`
	RecommendedWeight float64 `json:"recommended_cf_weight"`
}
