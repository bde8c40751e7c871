package services

import (
	"context"
	"time"

	"daytour/internal/models/db_models"
	"daytour/pkg/utils"

	"go.uber.org/zap"
)

// RouteNode is one candidate destination in the routing graph, carrying the
// blended desirability score and the parsed opening window.
type RouteNode struct {
	Destination db_models.Destination
	Score       float64
	OpenMinute  int
	CloseMinute int
}

// WindowFits reports whether the opening window is long enough to host the
// recommended visit at all. Nodes failing it can never appear on a route.
func (n RouteNode) WindowFits() bool {
	return n.CloseMinute-n.OpenMinute >= n.Destination.VisitMinutes
}

// RouteConstraints are the cumulative bounds a tour must respect. MaxMinutes
// bounds the time dimension (travel + visit), MaxBudget the cost dimension.
// MaxStops <= 0 means unbounded.
type RouteConstraints struct {
	MaxMinutes int
	MaxBudget  int
	MaxStops   int
}

// SolverConfig tunes the constrained solver. AllowDropWithPenalty lets the
// search discard low-value stops instead of reporting infeasibility when the
// full candidate set cannot fit; with it off the candidate set is expected to
// be pre-bounded by the caller.
type SolverConfig struct {
	TimeLimit            time.Duration
	AllowDropWithPenalty bool
}

func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		TimeLimit:            10 * time.Second,
		AllowDropWithPenalty: false,
	}
}

// RouteLeg is one visited node in a solved route.
type RouteLeg struct {
	Node          RouteNode
	TravelMinutes int
	ArrivalMinute int
}

type RouteSolution struct {
	Legs            []RouteLeg
	TotalTime       int
	TotalDistanceKm float64
	TotalCost       int
	TotalScore      float64
}

type RouteOptimizerInterface interface {
	Solve(ctx context.Context, start GeoPoint, candidates []RouteNode, constraints RouteConstraints) (*RouteSolution, error)
}

// RouteOptimizer searches for a minimal-distance visiting order over the
// complete graph {start} ∪ candidates, subject to the time and budget
// dimensions. The search is cheapest-arc construction followed by 2-opt
// improvement under a wall-clock budget; it is best-effort, not exact, and
// reports utils.ErrNoFeasibleRoute when it finds nothing in time.
type RouteOptimizer struct {
	distance DistanceServiceInterface
	cfg      SolverConfig
	log      *zap.Logger
}

func NewRouteOptimizer(distance DistanceServiceInterface, cfg SolverConfig, log *zap.Logger) RouteOptimizerInterface {
	return &RouteOptimizer{
		distance: distance,
		cfg:      cfg,
		log:      log,
	}
}

func (o *RouteOptimizer) Solve(ctx context.Context, start GeoPoint, candidates []RouteNode, constraints RouteConstraints) (*RouteSolution, error) {
	if len(candidates) == 0 {
		return nil, utils.ErrNoFeasibleRoute
	}

	locations := make([]GeoPoint, 0, len(candidates)+1)
	locations = append(locations, start)
	for _, c := range candidates {
		locations = append(locations, GeoPoint{
			Latitude:  c.Destination.Latitude,
			Longitude: c.Destination.Longitude,
		})
	}
	distKm, timeMin := o.distance.BuildMatrices(locations)

	deadline := time.Now().Add(o.cfg.TimeLimit)
	graph := &routingGraph{
		candidates: candidates,
		distKm:     distKm,
		timeMin:    timeMin,
	}

	active := make([]int, 0, len(candidates))
	for i, c := range candidates {
		if !c.WindowFits() {
			continue
		}
		active = append(active, i)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, utils.ErrNoFeasibleRoute
		}
		if len(active) == 0 {
			return nil, utils.ErrNoFeasibleRoute
		}
		if constraints.MaxStops > 0 && len(active) > constraints.MaxStops {
			if !o.cfg.AllowDropWithPenalty {
				return nil, utils.ErrNoFeasibleRoute
			}
			active = dropLowestScore(graph, active)
			continue
		}

		order := graph.cheapestArcOrder(active)
		order = graph.twoOpt(order, deadline)

		if graph.feasible(order, constraints) {
			return graph.extract(order), nil
		}

		if !o.cfg.AllowDropWithPenalty || time.Now().After(deadline) {
			o.log.Debug("constrained solver found no feasible route",
				zap.Int("candidates", len(candidates)),
				zap.Bool("allow_drop", o.cfg.AllowDropWithPenalty),
			)
			return nil, utils.ErrNoFeasibleRoute
		}

		// Drop the least valuable stop and retry with the smaller set. Each
		// drop pays a fixed penalty in value, so the loop sheds as few stops
		// as possible before giving up.
		active = dropLowestScore(graph, active)
	}
}

type routingGraph struct {
	candidates []RouteNode
	distKm     [][]float64 // index 0 is the depot
	timeMin    [][]int
}

// cheapestArcOrder builds an initial tour by repeatedly extending with the
// nearest unvisited candidate. Deterministic: ties resolve to the lower index.
func (g *routingGraph) cheapestArcOrder(active []int) []int {
	remaining := make(map[int]bool, len(active))
	for _, i := range active {
		remaining[i] = true
	}

	order := make([]int, 0, len(active))
	current := 0 // depot
	for len(remaining) > 0 {
		best := -1
		bestDist := 0.0
		for _, i := range active {
			if !remaining[i] {
				continue
			}
			d := g.distKm[current][i+1]
			if best == -1 || d < bestDist {
				best = i
				bestDist = d
			}
		}
		order = append(order, best)
		delete(remaining, best)
		current = best + 1
	}
	return order
}

// twoOpt improves the order by reversing segments whenever that shortens the
// total distance, first improvement, fixed scan order, until no move improves
// or the deadline passes.
func (g *routingGraph) twoOpt(order []int, deadline time.Time) []int {
	if len(order) < 3 {
		return order
	}

	improved := true
	for improved && time.Now().Before(deadline) {
		improved = false
		for i := 0; i < len(order)-1 && !improved; i++ {
			for j := i + 1; j < len(order) && !improved; j++ {
				if g.reversalGain(order, i, j) < -1e-9 {
					reverse(order, i, j)
					improved = true
				}
			}
		}
	}
	return order
}

// reversalGain is the distance delta of reversing order[i..j]; negative means
// the move shortens the route. The route is an open path from the depot, so
// only the two boundary arcs change.
func (g *routingGraph) reversalGain(order []int, i, j int) float64 {
	prev := 0
	if i > 0 {
		prev = order[i-1] + 1
	}

	removed := g.distKm[prev][order[i]+1]
	added := g.distKm[prev][order[j]+1]

	if j < len(order)-1 {
		next := order[j+1] + 1
		removed += g.distKm[order[j]+1][next]
		added += g.distKm[order[i]+1][next]
	}
	return added - removed
}

func reverse(order []int, i, j int) {
	for i < j {
		order[i], order[j] = order[j], order[i]
		i++
		j--
	}
}

// feasible walks the order from the depot checking both cumulative dimensions
// at every node.
func (g *routingGraph) feasible(order []int, constraints RouteConstraints) bool {
	if constraints.MaxStops > 0 && len(order) > constraints.MaxStops {
		return false
	}

	cumTime, cumCost := 0, 0
	current := 0
	for _, idx := range order {
		node := g.candidates[idx]
		cumTime += g.timeMin[current][idx+1] + node.Destination.VisitMinutes
		cumCost += node.Destination.Price
		if cumTime > constraints.MaxMinutes || cumCost > constraints.MaxBudget {
			return false
		}
		current = idx + 1
	}
	return true
}

// extract converts an order into a RouteSolution, recording per-leg travel
// time and the arrival offset from tour start. The return leg to the depot is
// not part of the itinerary.
func (g *routingGraph) extract(order []int) *RouteSolution {
	sol := &RouteSolution{Legs: make([]RouteLeg, 0, len(order))}

	cumTime := 0
	current := 0
	for _, idx := range order {
		node := g.candidates[idx]
		travel := g.timeMin[current][idx+1]
		arrival := cumTime + travel

		sol.Legs = append(sol.Legs, RouteLeg{
			Node:          node,
			TravelMinutes: travel,
			ArrivalMinute: arrival,
		})

		cumTime = arrival + node.Destination.VisitMinutes
		sol.TotalDistanceKm += g.distKm[current][idx+1]
		sol.TotalCost += node.Destination.Price
		sol.TotalScore += node.Score
		current = idx + 1
	}
	sol.TotalTime = cumTime

	return sol
}

func dropLowestScore(g *routingGraph, active []int) []int {
	lowest := -1
	for pos, idx := range active {
		if lowest == -1 || g.candidates[idx].Score < g.candidates[active[lowest]].Score {
			lowest = pos
		}
	}
	return append(active[:lowest], active[lowest+1:]...)
}
