// SPDX-License-Identifier: MIT

package territory

import (
	"errors"

	"github.com/katalvlaran/conquest/world"
)

var (
	// ErrBrokenRoute is returned when consecutive route territories share no road.
	ErrBrokenRoute = errors.New("territory: route hop has no road")

	// ErrTerritoryNotFound is returned when a territory is not on the road graph.
	ErrTerritoryNotFound = errors.New("territory: territory not found")

	// ErrNoCandidate is returned when the actor owns no territory with a route
	// to the destination.
	ErrNoCandidate = errors.New("territory: no conquest candidate")

	// ErrAlreadyOwned is returned when the actor already holds the destination.
	ErrAlreadyOwned = errors.New("territory: destination already owned")

	// ErrNilActor is returned when a query is given a nil actor.
	ErrNilActor = errors.New("territory: actor is nil")
)

// Candidate is the best launch point for a conquest.
type Candidate struct {
	// Origin is the owned territory the route starts from.
	Origin *world.Territory
	// Route is Origin..destination.
	Route []*world.Territory
	// Distance is the summed road cost of Route.
	Distance float64
}
