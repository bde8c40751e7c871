package services

import (
	"context"
	"math"

	"daytour/internal/models/db_models"
	"daytour/internal/models/request_models"
	"daytour/internal/models/response_models"
	"daytour/internal/repositories"
	"daytour/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TourConfig bounds the recommendation pipeline. CandidateLimit caps how many
// ranked destinations enter the routing graph; SearchRadiusKm is the
// geo-prefilter around the start point.
type TourConfig struct {
	CandidateLimit  int
	SearchRadiusKm  float64
	DefaultMaxStops int
	DefaultStart    request_models.StartLocation
}

func DefaultTourConfig() TourConfig {
	return TourConfig{
		CandidateLimit:  8,
		SearchRadiusKm:  50,
		DefaultMaxStops: 5,
		DefaultStart: request_models.StartLocation{
			Name:      "City center",
			Latitude:  10.7769,
			Longitude: 106.7009,
		},
	}
}

// Default preference tags seeding quick recommendations per traveler category.
var quickPreferences = map[string][]string{
	"Adventure":  {"nature", "hiking", "adventure", "outdoor"},
	"Cultural":   {"culture", "history", "museum", "architecture"},
	"Family":     {"family", "safe", "entertainment", "park"},
	"Relaxation": {"relaxation", "spa", "quiet", "nature"},
	"Budget":     {"budget", "local", "cheap", "walking"},
}

type TourServiceInterface interface {
	RecommendTour(ctx context.Context, profile request_models.TravelerProfile, start *request_models.StartLocation, userID *uuid.UUID) (response_models.TourResult, error)
	QuickRecommend(ctx context.Context, category string, budget, timeAvailable int) (response_models.TourResult, error)
	AnalyzeScores(ctx context.Context, profile request_models.TravelerProfile, topN int) (response_models.ScoreAnalysis, error)
}

type TourService struct {
	destinations repositories.DestinationRepository
	ranker       HybridRankerInterface
	scoring      ScoringEngineInterface
	distance     DistanceServiceInterface
	optimizer    RouteOptimizerInterface
	fallback     RouteOptimizerInterface
	cfg          TourConfig
	log          *zap.Logger
}

func NewTourService(
	destinations repositories.DestinationRepository,
	ranker HybridRankerInterface,
	scoring ScoringEngineInterface,
	distance DistanceServiceInterface,
	optimizer RouteOptimizerInterface,
	fallback RouteOptimizerInterface,
	cfg TourConfig,
	log *zap.Logger,
) TourServiceInterface {
	return &TourService{
		destinations: destinations,
		ranker:       ranker,
		scoring:      scoring,
		distance:     distance,
		optimizer:    optimizer,
		fallback:     fallback,
		cfg:          cfg,
		log:          log,
	}
}

// RecommendTour runs the full pipeline: fetch active destinations, prefilter
// by radius and budget, rank with the hybrid scorer, route the top candidates
// with the constrained solver, and fall back to the greedy optimizer when the
// solver finds nothing.
func (s *TourService) RecommendTour(ctx context.Context, profile request_models.TravelerProfile, start *request_models.StartLocation, userID *uuid.UUID) (response_models.TourResult, error) {
	if start == nil {
		defaultStart := s.cfg.DefaultStart
		start = &defaultStart
	}
	maxStops := profile.MaxStops
	if maxStops <= 0 {
		maxStops = s.cfg.DefaultMaxStops
	}

	dests, err := s.destinations.ListActive(ctx)
	if err != nil {
		s.log.Error("failed to load destinations", zap.Error(err))
		return response_models.TourResult{}, utils.ErrDatabaseError
	}
	if len(dests) == 0 {
		return failedTour("No destinations are available"), nil
	}

	feasible := s.prefilter(dests, profile, *start)
	if len(feasible) == 0 {
		return failedTour("No destinations satisfy the budget and radius filters"), nil
	}

	topN := s.cfg.CandidateLimit
	if maxStops < topN {
		topN = maxStops
	}
	ranked := s.ranker.Rank(ctx, profile, feasible, userID, topN)

	candidates := make([]RouteNode, 0, len(ranked))
	for _, c := range ranked {
		open, closeAt := utils.ParseOpeningHours(c.Destination.OpeningHours)
		candidates = append(candidates, RouteNode{
			Destination: c.Destination,
			Score:       c.BlendedScore,
			OpenMinute:  open,
			CloseMinute: closeAt,
		})
	}

	constraints := RouteConstraints{
		MaxMinutes: profile.AvailableTime * 60,
		MaxBudget:  budgetBound(profile.Budget),
		MaxStops:   maxStops,
	}
	startPoint := GeoPoint{Latitude: start.Latitude, Longitude: start.Longitude}

	solution, err := s.optimizer.Solve(ctx, startPoint, candidates, constraints)
	if err == nil {
		return s.assemble(solution, response_models.OptimizerConstraint, ""), nil
	}

	s.log.Info("constrained solver infeasible, running greedy fallback",
		zap.String("category", profile.Category),
		zap.Int("budget", profile.Budget),
		zap.Int("available_minutes", constraints.MaxMinutes),
		zap.Int("candidates", len(candidates)),
	)

	solution, err = s.fallback.Solve(ctx, startPoint, candidates, constraints)
	if err != nil {
		s.log.Warn("greedy fallback infeasible",
			zap.String("category", profile.Category),
			zap.Int("candidates", len(candidates)),
		)
		return failedTour("Constraints are too tight: no destination can be scheduled within the given time and budget"), nil
	}

	return s.assemble(solution, response_models.OptimizerHeuristic,
		"Route produced by the heuristic fallback and may not be optimal"), nil
}

func (s *TourService) QuickRecommend(ctx context.Context, category string, budget, timeAvailable int) (response_models.TourResult, error) {
	prefs, ok := quickPreferences[category]
	if !ok {
		prefs = []string{"general"}
	}

	profile := request_models.TravelerProfile{
		Category:      category,
		Preferences:   prefs,
		Budget:        budget,
		AvailableTime: timeAvailable,
		MaxStops:      s.cfg.DefaultMaxStops,
	}
	return s.RecommendTour(ctx, profile, nil, nil)
}

// AnalyzeScores ranks destinations by content score only, without routing.
func (s *TourService) AnalyzeScores(ctx context.Context, profile request_models.TravelerProfile, topN int) (response_models.ScoreAnalysis, error) {
	dests, err := s.destinations.ListActive(ctx)
	if err != nil {
		s.log.Error("failed to load destinations", zap.Error(err))
		return response_models.ScoreAnalysis{}, utils.ErrDatabaseError
	}

	scored := s.scoring.Rank(profile, dests, topN)

	top := make([]response_models.DestinationScore, 0, len(scored))
	for _, c := range scored {
		top = append(top, response_models.DestinationScore{
			ID:       c.Destination.ID.String(),
			Name:     c.Destination.Name,
			Category: c.Destination.Category,
			Tags:     c.Destination.Tags,
			Price:    c.Destination.Price,
			Score:    c.Score,
		})
	}

	return response_models.ScoreAnalysis{
		Success:         true,
		UserProfile:     profile,
		TopDestinations: top,
	}, nil
}

// prefilter keeps destinations inside the search radius whose individual price
// fits the budget.
func (s *TourService) prefilter(dests []db_models.Destination, profile request_models.TravelerProfile, start request_models.StartLocation) []db_models.Destination {
	feasible := make([]db_models.Destination, 0, len(dests))
	for _, dest := range dests {
		if profile.Budget > 0 && dest.Price > profile.Budget {
			continue
		}
		km := s.distance.HaversineKm(start.Latitude, start.Longitude, dest.Latitude, dest.Longitude)
		if s.cfg.SearchRadiusKm > 0 && km > s.cfg.SearchRadiusKm {
			continue
		}
		feasible = append(feasible, dest)
	}
	return feasible
}

func (s *TourService) assemble(sol *RouteSolution, optimizer, note string) response_models.TourResult {
	route := make([]response_models.RouteStop, 0, len(sol.Legs))
	for _, leg := range sol.Legs {
		dest := leg.Node.Destination
		route = append(route, response_models.RouteStop{
			ID:           dest.ID.String(),
			Name:         dest.Name,
			Category:     dest.Category,
			Latitude:     dest.Latitude,
			Longitude:    dest.Longitude,
			Address:      dest.Address,
			Price:        dest.Price,
			VisitTime:    dest.VisitMinutes,
			TravelTime:   leg.TravelMinutes,
			ArrivalTime:  leg.ArrivalMinute,
			Score:        leg.Node.Score,
			OpeningHours: dest.OpeningHours,
			Facilities:   dest.Facilities,
		})
	}

	avg := 0.0
	if len(route) > 0 {
		avg = sol.TotalScore / float64(len(route))
	}

	return response_models.TourResult{
		Success:        true,
		Route:          route,
		TotalLocations: len(route),
		TotalTime:      sol.TotalTime,
		TotalDistance:  math.Round(sol.TotalDistanceKm*100) / 100,
		TotalCost:      sol.TotalCost,
		TotalScore:     math.Round(sol.TotalScore*1000) / 1000,
		AvgScore:       math.Round(avg*1000) / 1000,
		OptimizerUsed:  optimizer,
		Note:           note,
	}
}

func failedTour(message string) response_models.TourResult {
	return response_models.TourResult{
		Success: false,
		Route:   []response_models.RouteStop{},
		Message: message,
	}
}

// budgetBound maps "no budget" onto an effectively unbounded cost dimension.
func budgetBound(budget int) int {
	if budget <= 0 {
		return math.MaxInt32
	}
	return budget
}
