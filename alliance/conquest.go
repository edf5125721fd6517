// SPDX-License-Identifier: MIT

package alliance

import (
	"fmt"

	"github.com/katalvlaran/conquest/dijkstra"
	"github.com/katalvlaran/conquest/territory"
	"github.com/katalvlaran/conquest/world"
)

// BestAllyForConquest finds the ally and route that let actor reach
// destination. For every ally, routing happens in the world without the
// ally's territories; for every territory actor still holds there, the
// cheapest route to destination is computed. A route is feasible only when
// the alliance power exceeds the approach cost (last road + destination
// Cost). The feasible route with the smallest distance wins; ties keep the
// first found.
//
// Errors: ErrActorNotFound, territory.ErrTerritoryNotFound,
// territory.ErrAlreadyOwned, ErrNoFeasibleAlly.
func BestAllyForConquest(roads *world.RoadGraph, actors *world.ActorGraph, actor *world.Actor, destination *world.Territory) (*Conquest, error) {
	allies, alliances, err := actors.Adjacent(actor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActorNotFound, actor)
	}
	if !roads.HasVertex(destination) {
		return nil, fmt.Errorf("%w: %v", territory.ErrTerritoryNotFound, destination)
	}
	if actor.Owns(destination) {
		return nil, fmt.Errorf("%w: %v holds %v", territory.ErrAlreadyOwned, actor, destination)
	}

	var best *Conquest
	for i, ally := range allies {
		al := alliances[i].Payload
		restricted := territory.RestrictedWorld(roads, ally.ID)
		if !restricted.HasVertex(destination) {
			continue
		}
		proj := territory.CostProjection(restricted)
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
			leg, _ := restricted.Edge(route[len(route)-2], route[len(route)-1])
			approach := leg.Payload.Cost + destination.Cost
			if al.Power <= approach {
				continue
			}
			if best == nil || d < best.Distance {
				best = &Conquest{Cost: approach, Ally: ally, Alliance: al, Route: route, Distance: d}
			}
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %v → %v", ErrNoFeasibleAlly, actor, destination)
	}

	return best, nil
}
