// SPDX-License-Identifier: MIT

package game

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/conquest/alliance"
	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/metrics"
	"github.com/katalvlaran/conquest/world"
)

// New returns an empty world. The alliance graph is always matrix-backed;
// the road graph is list-backed unless WithDenseRoads is given.
func New(opts ...Option) *Base {
	b := &Base{
		log:      slog.New(slog.DiscardHandler),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		owners:   make(world.Registry),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.engine == nil {
		// default options never fail
		b.engine, _ = alliance.NewEngine()
	}
	b.roads = world.NewRoadGraph(b.roadOpts...)
	b.actors = world.NewActorGraph(core.WithDenseStorage())

	return b
}

// Roads returns the live road graph.
func (b *Base) Roads() *world.RoadGraph { return b.roads }

// Actors returns the live alliance graph.
func (b *Base) Actors() *world.ActorGraph { return b.actors }

// Engine returns the alliance engine.
func (b *Base) Engine() *alliance.Engine { return b.engine }

// Owner resolves the current owner of t, or nil when t is unowned or its
// owner has left the world.
func (b *Base) Owner(t *world.Territory) *world.Actor {
	if t == nil {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	a, _ := b.owners.Owner(t.Owner)

	return a
}

// SearchLocale returns the territory named name (case-insensitive); the last
// match wins. When nothing matches an empty Territory is returned, never nil.
func (b *Base) SearchLocale(name string) *world.Territory {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if t := lastByName(b.roads, name, func(t *world.Territory) string { return t.Name }); t != nil {
		return t
	}

	return &world.Territory{}
}

// SearchActor returns the actor named name (case-insensitive); the last
// match wins. When nothing matches an empty Actor is returned, never nil.
func (b *Base) SearchActor(name string) *world.Actor {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if a := lastByName(b.actors, name, func(a *world.Actor) string { return a.Name }); a != nil {
		return a
	}

	return &world.Actor{}
}

// lastByName scans g in key order and returns the last vertex whose name
// equals name ignoring case, or the zero V.
func lastByName[V comparable, E any](g *core.Graph[V, E], name string, nameOf func(V) string) V {
	var found V
	for v := range g.Vertices() {
		if strings.EqualFold(nameOf(v), name) {
			found = v
		}
	}

	return found
}

// done records the outcome of op. A non-nil err is logged at Debug and
// counted as rejected. It reports whether the operation succeeded.
func (b *Base) done(op string, start time.Time, err error) bool {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeRejected
		b.log.Debug(op+" rejected", "error", err)
	}
	b.metrics.Record(op, outcome, time.Since(start))

	return err == nil
}

// resize refreshes the size gauges. Callers hold the write lock.
func (b *Base) resize() {
	b.metrics.SetSizes(b.roads.VertexCount(), b.actors.VertexCount(), b.actors.EdgeCount())
}
