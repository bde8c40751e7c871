package services

import (
	"context"
	"sort"

	"daytour/internal/models/db_models"
	"daytour/internal/models/request_models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scoring method tags on ranked candidates.
const (
	ScoreMethodContent = "content_based"
	ScoreMethodHybrid  = "hybrid"
)

type RankedCandidate struct {
	Destination  db_models.Destination
	ContentScore float64
	CFScore      *CFScore
	BlendedScore float64
	Method       string
}

type HybridRankerInterface interface {
	Rank(ctx context.Context, profile request_models.TravelerProfile, dests []db_models.Destination, userID *uuid.UUID, topN int) []RankedCandidate
}

type HybridRanker struct {
	scoring   ScoringEngineInterface
	cf        CFServiceInterface
	cfEnabled bool
	log       *zap.Logger
}

func NewHybridRanker(scoring ScoringEngineInterface, cf CFServiceInterface, cfEnabled bool, log *zap.Logger) HybridRankerInterface {
	return &HybridRanker{
		scoring:   scoring,
		cf:        cf,
		cfEnabled: cfEnabled,
		log:       log,
	}
}

// Rank orders destinations by a blend of content score and collaborative
// prediction. Anonymous travelers get content-only ranking; any failure in the
// collaborative path also degrades to content-only rather than failing the
// request.
func (r *HybridRanker) Rank(ctx context.Context, profile request_models.TravelerProfile, dests []db_models.Destination, userID *uuid.UUID, topN int) []RankedCandidate {
	contentRanked := r.scoring.Rank(profile, dests, 0)

	if userID == nil || !r.cfEnabled {
		return truncate(toContentCandidates(contentRanked), topN)
	}

	candidates, err := r.blendWithCF(ctx, contentRanked, *userID)
	if err != nil {
		r.log.Warn("collaborative filtering unavailable, falling back to content scoring",
			zap.String("user_id", userID.String()),
			zap.Int("candidates", len(contentRanked)),
			zap.Error(err),
		)
		return truncate(toContentCandidates(contentRanked), topN)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].BlendedScore > candidates[j].BlendedScore
	})
	return truncate(candidates, topN)
}

func (r *HybridRanker) blendWithCF(ctx context.Context, contentRanked []ScoredDestination, userID uuid.UUID) ([]RankedCandidate, error) {
	_, activityWeight, _, err := r.cf.ActivityLevel(ctx, userID)
	if err != nil {
		return nil, err
	}

	session, err := r.cf.BuildSession(ctx)
	if err != nil {
		return nil, err
	}

	destIDs := make([]uuid.UUID, 0, len(contentRanked))
	for _, c := range contentRanked {
		destIDs = append(destIDs, c.Destination.ID)
	}
	cfScores := r.cf.ScoreDestinations(session, userID, destIDs)

	candidates := make([]RankedCandidate, 0, len(contentRanked))
	for _, c := range contentRanked {
		candidate := RankedCandidate{
			Destination:  c.Destination,
			ContentScore: c.Score,
			BlendedScore: c.Score,
			Method:       ScoreMethodContent,
		}

		if cf, ok := cfScores[c.Destination.ID]; ok {
			weight := blendWeight(cf.Confidence, activityWeight)
			cfCopy := cf
			candidate.CFScore = &cfCopy
			candidate.BlendedScore = (1-weight)*c.Score + weight*cf.Score
			candidate.Method = ScoreMethodHybrid
		}

		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// blendWeight picks the CF share of the blend. Confidence overrides the
// activity-level weight at both extremes so sparse signals on cold
// destinations are never over-trusted.
func blendWeight(confidence, activityWeight float64) float64 {
	switch {
	case confidence > 0.7:
		return 0.7
	case confidence <= 0.4:
		return 0.2
	default:
		return activityWeight
	}
}

func toContentCandidates(scored []ScoredDestination) []RankedCandidate {
	candidates := make([]RankedCandidate, 0, len(scored))
	for _, c := range scored {
		candidates = append(candidates, RankedCandidate{
			Destination:  c.Destination,
			ContentScore: c.Score,
			BlendedScore: c.Score,
			Method:       ScoreMethodContent,
		})
	}
	return candidates
}

func truncate(candidates []RankedCandidate, topN int) []RankedCandidate {
	if topN > 0 && topN < len(candidates) {
		return candidates[:topN]
	}
	return candidates
}
