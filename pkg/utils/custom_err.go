package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
	ErrDestinationNotFound    = errors.New("destination not found")
	ErrNoFeasibleDestinations = errors.New("no destinations satisfy the budget and radius filters")
	ErrNoFeasibleRoute        = errors.New("no feasible route found within the given constraints")
	ErrFallbackInfeasible     = errors.New("no destination can be placed within the given constraints")
	ErrNoInteractionData      = errors.New("no interaction data available")
	ErrUnknownUser            = errors.New("user has no interactions in the matrix")
	ErrUnknownDestination     = errors.New("destination has no interactions in the matrix")
)
