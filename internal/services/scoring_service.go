package services

import (
	"math"
	"sort"
	"strings"

	"daytour/internal/models/db_models"
	"daytour/internal/models/request_models"
)

// ScoringWeights is the immutable factor weighting for the content scorer.
// The four weights are expected to sum to 1.0.
type ScoringWeights struct {
	Type    float64
	Tags    float64
	Price   float64
	TimeFit float64
}

func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Type:    0.30,
		Tags:    0.40,
		Price:   0.20,
		TimeFit: 0.10,
	}
}

type ScoredDestination struct {
	Destination db_models.Destination
	Score       float64
}

type ScoringEngineInterface interface {
	Score(profile request_models.TravelerProfile, dest db_models.Destination) float64
	Rank(profile request_models.TravelerProfile, dests []db_models.Destination, topN int) []ScoredDestination
}

type ScoringEngine struct {
	weights ScoringWeights
}

// NewScoringEngine builds a content scorer around a fixed weight set. Weights
// are copied in, so callers cannot mutate the engine after construction.
func NewScoringEngine(weights ScoringWeights) ScoringEngineInterface {
	return &ScoringEngine{weights: weights}
}

// Score rates how well a destination matches the traveler, in [0,1].
func (s *ScoringEngine) Score(profile request_models.TravelerProfile, dest db_models.Destination) float64 {
	score := 0.0

	// Category match: substring in either direction, case-insensitive.
	travelerCat := strings.ToLower(profile.Category)
	destCat := strings.ToLower(dest.Category)
	if travelerCat != "" && destCat != "" &&
		(strings.Contains(destCat, travelerCat) || strings.Contains(travelerCat, destCat)) {
		score += s.weights.Type
	}

	score += s.weights.Tags * tagJaccard(profile.Preferences, dest.Tags)
	score += s.weights.Price * priceCredit(dest.Price, profile.Budget)

	availableMinutes := profile.AvailableTime * 60
	if availableMinutes > 0 {
		timeRatio := math.Min(float64(dest.VisitMinutes)/float64(availableMinutes), 1.0)
		score += s.weights.TimeFit * (1 - timeRatio*0.5)
	}

	return math.Round(score*1000) / 1000
}

// Rank scores every destination and sorts descending. The sort is stable so
// equal scores keep their input order. topN <= 0 returns the full list.
func (s *ScoringEngine) Rank(profile request_models.TravelerProfile, dests []db_models.Destination, topN int) []ScoredDestination {
	scored := make([]ScoredDestination, 0, len(dests))
	for _, dest := range dests {
		scored = append(scored, ScoredDestination{
			Destination: dest,
			Score:       s.Score(profile, dest),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topN > 0 && topN < len(scored) {
		return scored[:topN]
	}
	return scored
}

// tagJaccard is intersection-over-union of the lower-cased tag sets, 0 when
// either set is empty.
func tagJaccard(prefs, tags []string) float64 {
	if len(prefs) == 0 || len(tags) == 0 {
		return 0
	}

	prefSet := make(map[string]struct{}, len(prefs))
	for _, p := range prefs {
		prefSet[strings.ToLower(p)] = struct{}{}
	}
	tagSet := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tagSet[strings.ToLower(t)] = struct{}{}
	}

	intersection := 0
	for t := range tagSet {
		if _, ok := prefSet[t]; ok {
			intersection++
		}
	}
	union := len(prefSet) + len(tagSet) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// priceCredit rewards comfortable affordability over marginal feasibility:
// full credit under 30% of budget, stepped down to nothing above it.
func priceCredit(price, budget int) float64 {
	if budget <= 0 {
		return 0.5
	}
	ratio := float64(price) / float64(budget)
	switch {
	case ratio <= 0.3:
		return 1.0
	case ratio <= 0.5:
		return 0.8
	case ratio <= 1.0:
		return 0.5
	default:
		return 0
	}
}
