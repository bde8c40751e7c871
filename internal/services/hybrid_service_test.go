package services

import (
	"context"
	"testing"

	"daytour/internal/models/db_models"
	"daytour/internal/repositories"
	"daytour/pkg/logger"
	"daytour/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCFService struct {
	activityWeight float64
	activityErr    error
	sessionErr     error
	scores         map[uuid.UUID]CFScore
}

func (f *fakeCFService) BuildSession(context.Context) (*CFSession, error) {
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	return &CFSession{}, nil
}

func (f *fakeCFService) Predict(*CFSession, uuid.UUID, uuid.UUID) (Prediction, error) {
	return Prediction{}, utils.ErrUnknownUser
}

func (f *fakeCFService) ScoreDestinations(_ *CFSession, _ uuid.UUID, _ []uuid.UUID) map[uuid.UUID]CFScore {
	return f.scores
}

func (f *fakeCFService) ActivityLevel(context.Context, uuid.UUID) (string, float64, repositories.ActivityCounts, error) {
	if f.activityErr != nil {
		return "", 0, repositories.ActivityCounts{}, f.activityErr
	}
	return "warm", f.activityWeight, repositories.ActivityCounts{}, nil
}

func hybridTestDest(id uuid.UUID, name string, tags []string) db_models.Destination {
	return db_models.Destination{
		BaseModel:    db_models.BaseModel{ID: id},
		Name:         name,
		Category:     "cultural",
		Tags:         tags,
		Price:        40000,
		VisitMinutes: 60,
	}
}

func TestRankAnonymousUsesContentOnly(t *testing.T) {
	cf := &fakeCFService{scores: map[uuid.UUID]CFScore{
		destX: {Score: 1.0, Confidence: 1.0},
	}}
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), cf, true, logger.NewTestLogger(t))

	dests := []db_models.Destination{
		hybridTestDest(destX, "Museum", []string{"culture"}),
		hybridTestDest(destY, "Gallery", nil),
	}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, nil, 0)

	require.Len(t, ranked, 2)
	for _, c := range ranked {
		assert.Equal(t, ScoreMethodContent, c.Method)
		assert.Nil(t, c.CFScore)
		assert.Equal(t, c.ContentScore, c.BlendedScore)
	}
}

func TestRankDisabledCFUsesContentOnly(t *testing.T) {
	cf := &fakeCFService{scores: map[uuid.UUID]CFScore{
		destX: {Score: 1.0, Confidence: 1.0},
	}}
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), cf, false, logger.NewTestLogger(t))

	dests := []db_models.Destination{hybridTestDest(destX, "Museum", []string{"culture"})}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, &userA, 0)

	require.Len(t, ranked, 1)
	assert.Equal(t, ScoreMethodContent, ranked[0].Method)
}

func TestRankDegradesWhenSessionFails(t *testing.T) {
	cf := &fakeCFService{sessionErr: utils.ErrNoInteractionData}
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), cf, true, logger.NewTestLogger(t))

	dests := []db_models.Destination{hybridTestDest(destX, "Museum", []string{"culture"})}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, &userA, 0)

	require.Len(t, ranked, 1)
	assert.Equal(t, ScoreMethodContent, ranked[0].Method)
	assert.Nil(t, ranked[0].CFScore)
}

func TestRankHighConfidenceLeansOnCF(t *testing.T) {
	cf := &fakeCFService{
		activityWeight: 0.5,
		scores: map[uuid.UUID]CFScore{
			destX: {Score: 0.0, Rating: 1.0, Confidence: 1.0, Method: MethodExact},
		},
	}
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), cf, true, logger.NewTestLogger(t))

	dests := []db_models.Destination{hybridTestDest(destX, "Museum", []string{"culture"})}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, &userA, 0)

	require.Len(t, ranked, 1)
	c := ranked[0]
	require.NotNil(t, c.CFScore)
	assert.Equal(t, ScoreMethodHybrid, c.Method)
	// Confidence 1.0 forces a 0.7 CF share regardless of activity level.
	assert.InDelta(t, 0.3*c.ContentScore, c.BlendedScore, 1e-9)
}

func TestRankLowConfidenceKeepsContentDominant(t *testing.T) {
	cf := &fakeCFService{
		activityWeight: 0.7,
		scores: map[uuid.UUID]CFScore{
			destX: {Score: 1.0, Rating: 5.0, Confidence: 0.1, Method: MethodBaselineDefault},
		},
	}
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), cf, true, logger.NewTestLogger(t))

	dests := []db_models.Destination{hybridTestDest(destX, "Museum", []string{"culture"})}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, &userA, 0)

	require.Len(t, ranked, 1)
	c := ranked[0]
	require.NotNil(t, c.CFScore)
	// Confidence 0.1 pins the CF share at 0.2.
	assert.InDelta(t, 0.8*c.ContentScore+0.2*1.0, c.BlendedScore, 1e-9)
}

func TestRankMidConfidenceUsesActivityWeight(t *testing.T) {
	cf := &fakeCFService{
		activityWeight: 0.5,
		scores: map[uuid.UUID]CFScore{
			destX: {Score: 1.0, Rating: 5.0, Confidence: 0.6, Method: MethodUserBased},
		},
	}
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), cf, true, logger.NewTestLogger(t))

	dests := []db_models.Destination{hybridTestDest(destX, "Museum", []string{"culture"})}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, &userA, 0)

	require.Len(t, ranked, 1)
	c := ranked[0]
	assert.InDelta(t, 0.5*c.ContentScore+0.5*1.0, c.BlendedScore, 1e-9)
}

func TestRankReordersByBlendedScore(t *testing.T) {
	// destY has the weaker content score but a strong collaborative signal.
	cf := &fakeCFService{
		activityWeight: 0.5,
		scores: map[uuid.UUID]CFScore{
			destY: {Score: 1.0, Rating: 5.0, Confidence: 1.0, Method: MethodExact},
		},
	}
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), cf, true, logger.NewTestLogger(t))

	dests := []db_models.Destination{
		hybridTestDest(destX, "Museum", []string{"culture"}),
		hybridTestDest(destY, "Hidden Gem", nil),
	}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, &userA, 0)

	require.Len(t, ranked, 2)
	assert.Equal(t, "Hidden Gem", ranked[0].Destination.Name)
	assert.Equal(t, ScoreMethodHybrid, ranked[0].Method)
	assert.Equal(t, ScoreMethodContent, ranked[1].Method)
}

func TestRankTruncatesToTopN(t *testing.T) {
	ranker := NewHybridRanker(NewScoringEngine(DefaultScoringWeights()), &fakeCFService{}, true, logger.NewTestLogger(t))

	dests := []db_models.Destination{
		hybridTestDest(destX, "A", []string{"culture"}),
		hybridTestDest(destY, "B", []string{"history"}),
		hybridTestDest(destZ, "C", nil),
	}

	ranked := ranker.Rank(context.Background(), testProfile(), dests, nil, 2)
	assert.Len(t, ranked, 2)
}