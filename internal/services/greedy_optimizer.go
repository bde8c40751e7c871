package services

import (
	"context"
	"math"

	"daytour/pkg/utils"

	"go.uber.org/zap"
)

// GreedyOptimizer is the deterministic fallback used when the constrained
// solver reports infeasibility. From the current position it repeatedly takes
// the feasible candidate with the best distance-penalized score, so it always
// terminates with a usable (possibly shorter) itinerary when any candidate
// fits at all.
type GreedyOptimizer struct {
	distance DistanceServiceInterface
	log      *zap.Logger
}

func NewGreedyOptimizer(distance DistanceServiceInterface, log *zap.Logger) RouteOptimizerInterface {
	return &GreedyOptimizer{
		distance: distance,
		log:      log,
	}
}

func (o *GreedyOptimizer) Solve(ctx context.Context, start GeoPoint, candidates []RouteNode, constraints RouteConstraints) (*RouteSolution, error) {
	if len(candidates) == 0 {
		return nil, utils.ErrFallbackInfeasible
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

	maxStops := constraints.MaxStops
	if maxStops <= 0 {
		maxStops = len(candidates)
	}

	sol := &RouteSolution{}
	visited := make([]bool, len(candidates))
	cumTime, cumCost := 0, 0
	current := 0 // depot

	for len(sol.Legs) < maxStops {
		if err := ctx.Err(); err != nil {
			break
		}

		best := -1
		bestValue := 0.0
		for i, node := range candidates {
			if visited[i] || !node.WindowFits() {
				continue
			}
			travel := timeMin[current][i+1]
			if cumTime+travel+node.Destination.VisitMinutes > constraints.MaxMinutes {
				continue
			}
			if cumCost+node.Destination.Price > constraints.MaxBudget {
				continue
			}

			// Desirability discounted by how far out of the way the stop is.
			value := node.Score / math.Max(1, distKm[current][i+1]/10)
			if best == -1 || value > bestValue {
				best = i
				bestValue = value
			}
		}

		if best == -1 {
			break
		}

		node := candidates[best]
		travel := timeMin[current][best+1]
		arrival := cumTime + travel

		sol.Legs = append(sol.Legs, RouteLeg{
			Node:          node,
			TravelMinutes: travel,
			ArrivalMinute: arrival,
		})
		sol.TotalDistanceKm += distKm[current][best+1]
		sol.TotalCost += node.Destination.Price
		sol.TotalScore += node.Score

		cumTime = arrival + node.Destination.VisitMinutes
		cumCost += node.Destination.Price
		visited[best] = true
		current = best + 1
	}

	if len(sol.Legs) == 0 {
		o.log.Debug("greedy fallback placed no destinations",
			zap.Int("candidates", len(candidates)),
			zap.Int("max_minutes", constraints.MaxMinutes),
			zap.Int("max_budget", constraints.MaxBudget),
		)
		return nil, utils.ErrFallbackInfeasible
	}

	sol.TotalTime = cumTime
	return sol, nil
}
