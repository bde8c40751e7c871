package services

import (
	"context"
	"math"
	"sort"

	"daytour/internal/repositories"
	"daytour/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

const (
	cfNeighbours    = 20
	cfFavoriteValue = 4.5
	cfGlobalDefault = 3.0
)

// Prediction method tags, reported back so callers can see how a rating was
// produced.
const (
	MethodExact           = "exact"
	MethodUserBased       = "user_based"
	MethodItemBased       = "item_based"
	MethodHybrid          = "hybrid"
	MethodBaselineAvg     = "baseline_avg"
	MethodBaselineDefault = "baseline_default"
)

type Prediction struct {
	Rating     float64
	Confidence float64
	Method     string
}

// CFScore is a prediction normalized to [0,1] for fusion with content scores.
type CFScore struct {
	Score      float64
	Rating     float64
	Confidence float64
	Method     string
}

// CFSession holds the interaction matrix and lazily computed similarity
// matrices for a single recommendation request. Nothing in it outlives the
// request.
type CFSession struct {
	matrix    *mat.Dense
	userIndex map[uuid.UUID]int
	destIndex map[uuid.UUID]int

	userSim *mat.Dense
	itemSim *mat.Dense
}

type CFServiceInterface interface {
	BuildSession(ctx context.Context) (*CFSession, error)
	Predict(session *CFSession, userID, destinationID uuid.UUID) (Prediction, error)
	ScoreDestinations(session *CFSession, userID uuid.UUID, destinationIDs []uuid.UUID) map[uuid.UUID]CFScore
	ActivityLevel(ctx context.Context, userID uuid.UUID) (string, float64, repositories.ActivityCounts, error)
}

type CFService struct {
	interactions repositories.InteractionRepository
	log          *zap.Logger
}

func NewCFService(interactions repositories.InteractionRepository, log *zap.Logger) CFServiceInterface {
	return &CFService{
		interactions: interactions,
		log:          log,
	}
}

// BuildSession assembles the user × destination interaction matrix from the
// current interaction store. Signals are reconciled with strict precedence:
// explicit rating, then visit-derived pseudo-rating (3.0 + 0.5 per repeat
// visit, capped at 5.0), then favorite (4.5).
func (s *CFService) BuildSession(ctx context.Context) (*CFSession, error) {
	ratings, err := s.interactions.ListRatings(ctx)
	if err != nil {
		return nil, err
	}
	visits, err := s.interactions.ListCompletedVisitCounts(ctx)
	if err != nil {
		return nil, err
	}
	favorites, err := s.interactions.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}

	type cell struct{ user, dest uuid.UUID }
	strength := make(map[cell]float64)

	for _, r := range ratings {
		strength[cell{r.UserID, r.DestinationID}] = r.Rating
	}
	for _, v := range visits {
		key := cell{v.UserID, v.DestinationID}
		if _, ok := strength[key]; !ok {
			strength[key] = math.Min(3.0+float64(v.VisitCount-1)*0.5, 5.0)
		}
	}
	for _, f := range favorites {
		key := cell{f.UserID, f.DestinationID}
		if _, ok := strength[key]; !ok {
			strength[key] = cfFavoriteValue
		}
	}

	if len(strength) == 0 {
		return nil, utils.ErrNoInteractionData
	}

	userIndex := make(map[uuid.UUID]int)
	destIndex := make(map[uuid.UUID]int)
	for key := range strength {
		if _, ok := userIndex[key.user]; !ok {
			userIndex[key.user] = -1
		}
		if _, ok := destIndex[key.dest]; !ok {
			destIndex[key.dest] = -1
		}
	}
	assignStableIndices(userIndex)
	assignStableIndices(destIndex)

	matrix := mat.NewDense(len(userIndex), len(destIndex), nil)
	for key, value := range strength {
		matrix.Set(userIndex[key.user], destIndex[key.dest], value)
	}

	s.log.Debug("interaction matrix built",
		zap.Int("users", len(userIndex)),
		zap.Int("destinations", len(destIndex)),
		zap.Int("interactions", len(strength)),
	)

	return &CFSession{
		matrix:    matrix,
		userIndex: userIndex,
		destIndex: destIndex,
	}, nil
}

// assignStableIndices replaces the placeholder values with row/column indices
// ordered by UUID string, so matrix layout is deterministic run to run.
func assignStableIndices(index map[uuid.UUID]int) {
	ids := make([]uuid.UUID, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	for i, id := range ids {
		index[id] = i
	}
}

// Predict estimates the traveler's rating for a destination, blending
// user-based and item-based k-NN when both are available.
func (s *CFService) Predict(session *CFSession, userID, destinationID uuid.UUID) (Prediction, error) {
	userIdx, ok := session.userIndex[userID]
	if !ok {
		return Prediction{}, utils.ErrUnknownUser
	}
	destIdx, ok := session.destIndex[destinationID]
	if !ok {
		return Prediction{}, utils.ErrUnknownDestination
	}

	// A recorded interaction is returned as-is, not estimated.
	if known := session.matrix.At(userIdx, destIdx); known > 0 {
		return Prediction{Rating: known, Confidence: 1.0, Method: MethodExact}, nil
	}

	userPred, userOK := s.predictUserBased(session, userIdx, destIdx)
	itemPred, itemOK := s.predictItemBased(session, userIdx, destIdx)

	switch {
	case userOK && itemOK:
		return Prediction{
			Rating:     clampRating(0.5*userPred + 0.5*itemPred),
			Confidence: 0.9,
			Method:     MethodHybrid,
		}, nil
	case userOK:
		return Prediction{Rating: clampRating(userPred), Confidence: 0.6, Method: MethodUserBased}, nil
	case itemOK:
		return Prediction{Rating: clampRating(itemPred), Confidence: 0.6, Method: MethodItemBased}, nil
	}

	if avg, ok := columnAverage(session.matrix, destIdx); ok {
		return Prediction{Rating: clampRating(avg), Confidence: 0.3, Method: MethodBaselineAvg}, nil
	}
	return Prediction{Rating: cfGlobalDefault, Confidence: 0.1, Method: MethodBaselineDefault}, nil
}

// predictUserBased is a weighted average over the k users most similar to the
// target, restricted to those who actually rated the destination.
func (s *CFService) predictUserBased(session *CFSession, userIdx, destIdx int) (float64, bool) {
	if session.userSim == nil {
		session.userSim = cosineSimilarity(session.matrix)
	}

	rows, _ := session.matrix.Dims()
	neighbours := topKByValue(session.userSim.RawRowView(userIdx), cfNeighbours)

	numerator, denominator := 0.0, 0.0
	for _, n := range neighbours {
		if n < 0 || n >= rows {
			continue
		}
		rating := session.matrix.At(n, destIdx)
		if rating <= 0 {
			continue
		}
		sim := session.userSim.At(userIdx, n)
		numerator += sim * rating
		denominator += math.Abs(sim)
	}

	if denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}

// predictItemBased mirrors the user-based computation over the transposed
// matrix, restricted to destinations the target user actually rated.
func (s *CFService) predictItemBased(session *CFSession, userIdx, destIdx int) (float64, bool) {
	if session.itemSim == nil {
		transposed := mat.DenseCopyOf(session.matrix.T())
		session.itemSim = cosineSimilarity(transposed)
	}

	_, cols := session.matrix.Dims()
	neighbours := topKByValue(session.itemSim.RawRowView(destIdx), cfNeighbours)

	numerator, denominator := 0.0, 0.0
	for _, n := range neighbours {
		if n < 0 || n >= cols {
			continue
		}
		rating := session.matrix.At(userIdx, n)
		if rating <= 0 {
			continue
		}
		sim := session.itemSim.At(destIdx, n)
		numerator += sim * rating
		denominator += math.Abs(sim)
	}

	if denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}

// ScoreDestinations batches predictions for a candidate set and normalizes
// ratings from [1,5] to [0,1]. Destinations the session cannot predict are
// simply absent from the result.
func (s *CFService) ScoreDestinations(session *CFSession, userID uuid.UUID, destinationIDs []uuid.UUID) map[uuid.UUID]CFScore {
	scores := make(map[uuid.UUID]CFScore, len(destinationIDs))
	for _, destID := range destinationIDs {
		pred, err := s.Predict(session, userID, destID)
		if err != nil {
			continue
		}
		scores[destID] = CFScore{
			Score:      (pred.Rating - 1) / 4.0,
			Rating:     pred.Rating,
			Confidence: pred.Confidence,
			Method:     pred.Method,
		}
	}
	return scores
}

// ActivityLevel classifies the traveler by interaction volume and returns the
// collaborative-filtering trust weight that volume earns.
func (s *CFService) ActivityLevel(ctx context.Context, userID uuid.UUID) (string, float64, repositories.ActivityCounts, error) {
	counts, err := s.interactions.CountByUser(ctx, userID)
	if err != nil {
		return "", 0, repositories.ActivityCounts{}, err
	}

	total := counts.Ratings + counts.Visits + counts.Favorites
	switch {
	case total == 0:
		return "cold", 0.2, counts, nil
	case total < 5:
		return "warm", 0.5, counts, nil
	default:
		return "hot", 0.7, counts, nil
	}
}

// cosineSimilarity computes the row-by-row cosine similarity matrix by L2
// normalizing each row and multiplying by the transpose. The diagonal is
// zeroed so k-NN never picks the row itself.
func cosineSimilarity(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()

	normalized := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		row := m.RawRowView(i)
		norm := 0.0
		for _, v := range row {
			norm += v * v
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for j, v := range row {
			normalized.Set(i, j, v/norm)
		}
	}

	sim := mat.NewDense(rows, rows, nil)
	sim.Mul(normalized, normalized.T())
	for i := 0; i < rows; i++ {
		sim.Set(i, i, 0)
	}
	return sim
}

// topKByValue returns the indices of the k largest values, largest first.
// Ties break on the lower index for determinism.
func topKByValue(values []float64, k int) []int {
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return values[indices[a]] > values[indices[b]]
	})
	if k < len(indices) {
		indices = indices[:k]
	}
	return indices
}

func columnAverage(m *mat.Dense, col int) (float64, bool) {
	rows, _ := m.Dims()
	sum, count := 0.0, 0
	for i := 0; i < rows; i++ {
		if v := m.At(i, col); v > 0 {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

func clampRating(r float64) float64 {
	return math.Min(math.Max(r, 1.0), 5.0)
}
