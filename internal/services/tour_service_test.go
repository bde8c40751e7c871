package services

import (
	"context"
	"testing"

	"daytour/internal/models/db_models"
	"daytour/internal/models/request_models"
	"daytour/internal/models/response_models"
	"daytour/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDestinationRepo struct {
	dests []db_models.Destination
	err   error
}

func (f *fakeDestinationRepo) GetByID(_ context.Context, id string) (*db_models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.dests {
		if f.dests[i].ID.String() == id {
			return &f.dests[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDestinationRepo) ListActive(context.Context) ([]db_models.Destination, error) {
	return f.dests, f.err
}

func (f *fakeDestinationRepo) List(context.Context, int, int, string, string) ([]db_models.Destination, error) {
	return f.dests, f.err
}

func tourTestDest(name string, latSteps int, price, visitMinutes int, tags []string) db_models.Destination {
	return db_models.Destination{
		BaseModel:    db_models.BaseModel{ID: uuid.New()},
		Name:         name,
		Category:     "cultural",
		Tags:         tags,
		Latitude:     10.0 + 0.09*float64(latSteps),
		Longitude:    106.0,
		Price:        price,
		OpeningHours: "08:00-20:00",
		VisitMinutes: visitMinutes,
		IsActive:     true,
	}
}

func tourTestStart() *request_models.StartLocation {
	return &request_models.StartLocation{Name: "Depot", Latitude: 10.0, Longitude: 106.0}
}

func newTestTourService(t *testing.T, repo *fakeDestinationRepo) TourServiceInterface {
	log := logger.NewTestLogger(t)
	scoring := NewScoringEngine(DefaultScoringWeights())
	distance := NewDistanceService(nil)
	ranker := NewHybridRanker(scoring, &fakeCFService{}, true, log)
	optimizer := NewRouteOptimizer(distance, DefaultSolverConfig(), log)
	fallback := NewGreedyOptimizer(distance, log)
	return NewTourService(repo, ranker, scoring, distance, optimizer, fallback, DefaultTourConfig(), log)
}

func TestRecommendTourCulturalScenario(t *testing.T) {
	dests := make([]db_models.Destination, 0, 10)
	for i := 1; i <= 10; i++ {
		steps := i % 4 // all within ~30 km of the depot
		dests = append(dests, tourTestDest("Site", steps, 40000, 45, []string{"history", "museum"}))
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	profile := request_models.TravelerProfile{
		Category:      "Cultural",
		Preferences:   []string{"history", "museum"},
		Budget:        500000,
		AvailableTime: 6,
		MaxStops:      4,
	}

	result, err := svc.RecommendTour(context.Background(), profile, tourTestStart(), nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.LessOrEqual(t, result.TotalLocations, 4)
	assert.LessOrEqual(t, result.TotalCost, 500000)
	assert.LessOrEqual(t, result.TotalTime, 360)
	assert.Equal(t, response_models.OptimizerConstraint, result.OptimizerUsed)
	assert.Equal(t, len(result.Route), result.TotalLocations)
}

func TestRecommendTourNoAffordableDestinations(t *testing.T) {
	dests := []db_models.Destination{
		tourTestDest("Expensive A", 1, 200000, 60, nil),
		tourTestDest("Expensive B", 2, 300000, 60, nil),
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	profile := request_models.TravelerProfile{
		Category:      "Cultural",
		Preferences:   []string{"history"},
		Budget:        100000,
		AvailableTime: 2,
		MaxStops:      10,
	}

	result, err := svc.RecommendTour(context.Background(), profile, tourTestStart(), nil)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, result.Route)
}

func TestRecommendTourFallsBackToGreedy(t *testing.T) {
	// The full pair cannot fit in two hours, but the near stop alone can, so
	// the solver reports infeasible and the greedy fallback trims the route.
	dests := []db_models.Destination{
		tourTestDest("Near", 1, 40000, 60, []string{"history"}),
		tourTestDest("Marathon", 2, 40000, 300, []string{"history"}),
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	profile := request_models.TravelerProfile{
		Category:      "Cultural",
		Preferences:   []string{"history"},
		Budget:        500000,
		AvailableTime: 2,
	}

	result, err := svc.RecommendTour(context.Background(), profile, tourTestStart(), nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, response_models.OptimizerHeuristic, result.OptimizerUsed)
	assert.NotEmpty(t, result.Note)
	require.Len(t, result.Route, 1)
	assert.Equal(t, "Near", result.Route[0].Name)
	assert.LessOrEqual(t, result.TotalTime, 120)
}

func TestRecommendTourBothOptimizersInfeasible(t *testing.T) {
	dests := []db_models.Destination{
		tourTestDest("All Day", 1, 40000, 600, []string{"history"}),
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	profile := request_models.TravelerProfile{
		Category:      "Cultural",
		Preferences:   []string{"history"},
		Budget:        500000,
		AvailableTime: 2,
	}

	result, err := svc.RecommendTour(context.Background(), profile, tourTestStart(), nil)
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "too tight")
}

func TestRecommendTourExcludesFarDestinations(t *testing.T) {
	dests := []db_models.Destination{
		tourTestDest("Near", 1, 40000, 60, []string{"history"}),
		tourTestDest("Far", 10, 40000, 60, []string{"history"}), // ~100 km out
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	profile := request_models.TravelerProfile{
		Category:      "Cultural",
		Preferences:   []string{"history"},
		Budget:        500000,
		AvailableTime: 8,
	}

	result, err := svc.RecommendTour(context.Background(), profile, tourTestStart(), nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	for _, stop := range result.Route {
		assert.NotEqual(t, "Far", stop.Name)
	}
}

func TestRecommendTourDeterministic(t *testing.T) {
	dests := []db_models.Destination{
		tourTestDest("A", 1, 30000, 45, []string{"history"}),
		tourTestDest("B", 2, 60000, 60, []string{"museum"}),
		tourTestDest("C", 3, 40000, 90, []string{"culture"}),
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	profile := request_models.TravelerProfile{
		Category:      "Cultural",
		Preferences:   []string{"history", "museum"},
		Budget:        500000,
		AvailableTime: 8,
	}

	first, err := svc.RecommendTour(context.Background(), profile, tourTestStart(), nil)
	require.NoError(t, err)
	second, err := svc.RecommendTour(context.Background(), profile, tourTestStart(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQuickRecommendUsesDefaults(t *testing.T) {
	// Destinations near the default city-center depot.
	dests := []db_models.Destination{
		{
			BaseModel:    db_models.BaseModel{ID: uuid.New()},
			Name:         "Museum of History",
			Category:     "cultural",
			Tags:         []string{"culture", "history"},
			Latitude:     10.7879,
			Longitude:    106.6992,
			Price:        40000,
			OpeningHours: "08:00-17:00",
			VisitMinutes: 90,
			IsActive:     true,
		},
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	result, err := svc.QuickRecommend(context.Background(), "Cultural", 500000, 8)
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.Route, 1)
	assert.Equal(t, "Museum of History", result.Route[0].Name)
}

func TestAnalyzeScoresRanksWithoutRouting(t *testing.T) {
	dests := []db_models.Destination{
		tourTestDest("Weak", 1, 450000, 60, nil),
		tourTestDest("Strong", 2, 40000, 60, []string{"history", "museum"}),
	}
	svc := newTestTourService(t, &fakeDestinationRepo{dests: dests})

	profile := request_models.TravelerProfile{
		Category:      "Cultural",
		Preferences:   []string{"history", "museum"},
		Budget:        500000,
		AvailableTime: 6,
	}

	analysis, err := svc.AnalyzeScores(context.Background(), profile, 10)
	require.NoError(t, err)

	assert.True(t, analysis.Success)
	require.Len(t, analysis.TopDestinations, 2)
	assert.Equal(t, "Strong", analysis.TopDestinations[0].Name)
	assert.GreaterOrEqual(t, analysis.TopDestinations[0].Score, analysis.TopDestinations[1].Score)
}
