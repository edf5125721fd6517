// SPDX-License-Identifier: MIT
//
// File: query.go
// Role: path, conquest and alliance queries.
//
// Failures are reported through sentinels: -1 distances, empty routes, nil
// alliances. The reason is logged at Debug and counted as rejected.

package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/conquest/alliance"
	"github.com/katalvlaran/conquest/dijkstra"
	"github.com/katalvlaran/conquest/territory"
	"github.com/katalvlaran/conquest/world"
)

// errUnreachable marks search exhaustion in logs and metrics.
var errUnreachable = errors.New("game: destination unreachable")

// CheapestPath returns the cheapest road route from t1 to t2 and its summed
// road cost, or (-1, empty) when either endpoint is not on the map or t2 is
// unreachable.
func (b *Base) CheapestPath(t1, t2 *world.Territory) (float64, []*world.Territory) {
	start := time.Now()
	b.mu.RLock()
	defer b.mu.RUnlock()

	d, path, err := dijkstra.ShortestPath(b.roads, t1, t2)
	if err == nil && d == dijkstra.Unreachable {
		err = fmt.Errorf("%w: %v → %v", errUnreachable, t1, t2)
	}
	if !b.done(OpCheapestPath, start, err) {
		return dijkstra.Unreachable, []*world.Territory{}
	}

	return d, path
}

// ConquestCost returns what actor pays to walk route, or -1 when the route
// is broken or actor is nil.
func (b *Base) ConquestCost(actor *world.Actor, route []*world.Territory) float64 {
	start := time.Now()
	b.mu.RLock()
	defer b.mu.RUnlock()

	c, err := territory.ConquestCost(b.roads, b.owners, actor, route)
	if !b.done(OpConquestCost, start, err) {
		return -1
	}

	return c
}

// BestConquestCandidate returns the cheapest route from any territory held
// by actor to destination, with its distance, or (-1, empty).
func (b *Base) BestConquestCandidate(actor *world.Actor, destination *world.Territory) (float64, []*world.Territory) {
	start := time.Now()
	b.mu.RLock()
	defer b.mu.RUnlock()

	c, err := territory.BestConquestCandidate(b.roads, actor, destination)
	if !b.done(OpBestConquestCandidate, start, err) {
		return -1, []*world.Territory{}
	}

	return c.Distance, c.Route
}

// AllAlliedActors returns the actors allied with actor; empty when actor is
// not in the world.
func (b *Base) AllAlliedActors(actor *world.Actor) []*world.Actor {
	b.mu.RLock()
	defer b.mu.RUnlock()

	allies, err := alliance.Allies(b.actors, actor)
	if err != nil {
		b.log.Debug("allied actors rejected", "error", err)
		return []*world.Actor{}
	}

	return allies
}

// StrongestAllianceBloc returns the largest alliance power and fills members
// with its two actors; 0 and empty members when there is no alliance.
// A nil members pointer is ignored.
func (b *Base) StrongestAllianceBloc(members *[]*world.Actor) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	al := alliance.StrongestBloc(b.actors)
	if al == nil {
		if members != nil {
			*members = []*world.Actor{}
		}
		return 0
	}
	if members != nil {
		*members = []*world.Actor{al.A, al.B}
	}

	return al.Power
}

// ProposeAlliance creates a public alliance between a and c (see
// alliance.Engine.Propose). Nil on rejection.
func (b *Base) ProposeAlliance(a, c *world.Actor) *world.Alliance {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	al, err := b.engine.Propose(b.actors, a, c)
	if !b.done(OpProposeAlliance, start, err) {
		return nil
	}
	b.log.Info("alliance proposed", "alliance", al.String())
	b.resize()

	return al
}

// AllPossibleAlliances returns an independent alliance graph: the public view
// of the world closed under pairwise proposals. The live graph is untouched.
// Nil if a proposal fails.
func (b *Base) AllPossibleAlliances() *world.ActorGraph {
	start := time.Now()
	// engine draws may come from a non-concurrent Rand
	b.mu.Lock()
	defer b.mu.Unlock()

	g, err := b.engine.AllPossible(b.actors)
	if !b.done(OpAllPossibleAlliances, start, err) {
		return nil
	}

	return g
}

// BestAllyForConquest returns the approach cost of the best ally-backed
// conquest of destination and a single-entry map from that ally to the
// route. (-1, nil) when actor or destination is invalid or no ally can
// support the attack.
func (b *Base) BestAllyForConquest(actor *world.Actor, destination *world.Territory) (float64, map[*world.Actor][]*world.Territory) {
	start := time.Now()
	b.mu.RLock()
	defer b.mu.RUnlock()

	if actor == nil || destination == nil {
		b.done(OpBestAllyForConquest, start, fmt.Errorf("%w: nil argument", ErrUnknownActor))
		return -1, nil
	}
	c, err := alliance.BestAllyForConquest(b.roads, b.actors, actor, destination)
	if !b.done(OpBestAllyForConquest, start, err) {
		return -1, nil
	}

	return c.Cost, map[*world.Actor][]*world.Territory{c.Ally: c.Route}
}
