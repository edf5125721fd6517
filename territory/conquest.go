// SPDX-License-Identifier: MIT

package territory

import (
	"fmt"

	"github.com/katalvlaran/conquest/dijkstra"
	"github.com/katalvlaran/conquest/world"
)

// ConquestCost prices an invasion along route for attacker: the sum of the
// road cost of every hop plus the defense of every intermediate territory
// (route[1:len-1]). An intermediate territory held by attacker defends with
// 0; any other contributes its Cost, plus its owner's Strength when the owner
// resolves through owners. Routes shorter than two territories cost 0.
//
// Errors: ErrNilActor, ErrTerritoryNotFound, ErrBrokenRoute.
func ConquestCost(roads *world.RoadGraph, owners world.Owners, attacker *world.Actor, route []*world.Territory) (float64, error) {
	if attacker == nil {
		return 0, ErrNilActor
	}
	for _, t := range route {
		if !roads.HasVertex(t) {
			return 0, fmt.Errorf("%w: %v", ErrTerritoryNotFound, t)
		}
	}

	total := 0.0
	for i := 1; i < len(route); i++ {
		e, ok := roads.Edge(route[i-1], route[i])
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v", ErrBrokenRoute, route[i-1], route[i])
		}
		total += e.Payload.Cost
	}
	for i := 1; i < len(route)-1; i++ {
		total += defense(owners, attacker, route[i])
	}

	return total, nil
}

// defense is what t costs attacker to pass through.
func defense(owners world.Owners, attacker *world.Actor, t *world.Territory) float64 {
	if attacker.Owns(t) {
		return 0
	}
	d := t.Cost
	if owners != nil {
		if owner, ok := owners.Owner(t.Owner); ok {
			d += owner.Strength
		}
	}

	return d
}

// BestConquestCandidate picks, among the territories actor holds on roads,
// the one with the cheapest route to destination on the cost projection.
// Ties keep the first owned territory.
//
// Errors: ErrNilActor, ErrTerritoryNotFound, ErrAlreadyOwned, ErrNoCandidate.
func BestConquestCandidate(roads *world.RoadGraph, actor *world.Actor, destination *world.Territory) (*Candidate, error) {
	if actor == nil {
		return nil, ErrNilActor
	}
	if !roads.HasVertex(destination) {
		return nil, fmt.Errorf("%w: %v", ErrTerritoryNotFound, destination)
	}
	if actor.Owns(destination) {
		return nil, fmt.Errorf("%w: %v holds %v", ErrAlreadyOwned, actor, destination)
	}

	proj := CostProjection(roads)
	var best *Candidate
	for _, origin := range actor.Territories {
		if !actor.Owns(origin) || !proj.HasVertex(origin) {
			continue
		}
		d, route, err := dijkstra.ShortestPath(proj, origin, destination)
		if err != nil {
			return nil, err
		}
		if d == dijkstra.Unreachable {
			continue
		}
		if best == nil || d < best.Distance {
			best = &Candidate{Origin: origin, Route: route, Distance: d}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoCandidate, actor, destination)
	}

	return best, nil
}
