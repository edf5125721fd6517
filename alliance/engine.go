// SPDX-License-Identifier: MIT

package alliance

import (
	"fmt"

	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/dijkstra"
	"github.com/katalvlaran/conquest/world"
)

// Engine proposes and synthesizes alliances. It holds no world state; every
// method takes the graphs it works on.
type Engine struct {
	rnd      Rand
	min, max float64
	policy   PathPolicy

	err error
}

// NewEngine returns an Engine with the given options applied.
// Defaults: global math/rand/v2 source, fallback [0.1, 1.0), PowerAsCost.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		rnd:    globalRand{},
		min:    DefaultFallbackMin,
		max:    DefaultFallbackMax,
		policy: PowerAsCost,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.err != nil {
		return nil, e.err
	}

	return e, nil
}

// Policy returns the configured path policy.
func (e *Engine) Policy() PathPolicy { return e.policy }

// fallback draws a factor in [min, max).
func (e *Engine) fallback() float64 {
	return e.min + e.rnd.Float64()*(e.max-e.min)
}

// pathGraph returns the graph whose shortest paths define alliance paths.
func (e *Engine) pathGraph(actors *world.ActorGraph) *world.ActorGraph {
	if e.policy == HopCount {
		return core.UnitWeightView(actors)
	}

	return actors
}

// Factor returns the compatibility factor a proposal between a and b would
// get: the mean compatibility of the public alliances on the shortest
// alliance path, or a fallback draw when there is no path or every hop on it
// is private. The second result reports whether the fallback was used.
func (e *Engine) Factor(actors *world.ActorGraph, a, b *world.Actor) (float64, bool, error) {
	d, path, err := dijkstra.ShortestPath(e.pathGraph(actors), a, b)
	if err != nil {
		return 0, false, err
	}
	if d == dijkstra.Unreachable {
		return e.fallback(), true, nil
	}

	sum, n := 0.0, 0
	for i := 1; i < len(path); i++ {
		edge, ok := actors.Edge(path[i-1], path[i])
		if !ok || edge.Payload.Private {
			continue
		}
		sum += edge.Payload.Compatibility
		n++
	}
	if n == 0 {
		return e.fallback(), true, nil
	}

	return sum / float64(n), false, nil
}

// Propose creates a public alliance between a and b and inserts it into
// actors with weight = power = (strength(a)+strength(b)) * factor.
//
// Errors: ErrSelfAlliance, ErrActorNotFound, ErrAllianceExists; the graph is
// unchanged on error.
func (e *Engine) Propose(actors *world.ActorGraph, a, b *world.Actor) (*world.Alliance, error) {
	if a == b {
		return nil, fmt.Errorf("%w: %v", ErrSelfAlliance, a)
	}
	for _, x := range []*world.Actor{a, b} {
		if !actors.HasVertex(x) {
			return nil, fmt.Errorf("%w: %v", ErrActorNotFound, x)
		}
	}
	if actors.HasEdge(a, b) {
		return nil, fmt.Errorf("%w: %v–%v", ErrAllianceExists, a, b)
	}

	factor, _, err := e.Factor(actors, a, b)
	if err != nil {
		return nil, err
	}
	al := &world.Alliance{
		Compatibility: factor,
		Power:         (a.Strength + b.Strength) * factor,
		A:             a,
		B:             b,
	}
	if err := actors.AddEdge(a, b, al, al.Power); err != nil {
		return nil, err
	}

	return al, nil
}

// PublicView returns a copy of actors where every alliance is a fresh record
// with Private cleared; compatibility and power are copied verbatim.
func PublicView(actors *world.ActorGraph) *world.ActorGraph {
	return core.MapEdges(actors, func(e *core.Edge[*world.Actor, *world.Alliance]) (*world.Alliance, float64) {
		cp := *e.Payload
		cp.Private = false

		return &cp, e.Weight
	})
}

// AllPossible returns the public view of actors closed under pairwise
// proposals: the first actor is paired with every later one it is not yet
// allied with, then the same is done for the remainder.
func (e *Engine) AllPossible(actors *world.ActorGraph) (*world.ActorGraph, error) {
	view := PublicView(actors)
	remaining := view.KeyedVertices()
	for len(remaining) > 0 {
		first, rest := remaining[0], remaining[1:]
		for _, other := range rest {
			if view.HasEdge(first, other) {
				continue
			}
			if _, err := e.Propose(view, first, other); err != nil {
				return nil, err
			}
		}
		remaining = rest
	}

	return view, nil
}

// Allies returns the actors directly allied with actor, in adjacency order.
func Allies(actors *world.ActorGraph, actor *world.Actor) ([]*world.Actor, error) {
	verts, _, err := actors.Adjacent(actor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActorNotFound, actor)
	}

	return verts, nil
}

// StrongestBloc returns the alliance with maximal power, or nil when actors
// has no alliance. Ties keep the first alliance in edge order.
func StrongestBloc(actors *world.ActorGraph) *world.Alliance {
	var best *world.Alliance
	for e := range actors.Edges() {
		if best == nil || e.Payload.Power > best.Power {
			best = e.Payload
		}
	}

	return best
}
