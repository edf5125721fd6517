// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Base state, options and operation names.

package game

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/conquest/alliance"
	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/metrics"
	"github.com/katalvlaran/conquest/world"
)

var (
	// ErrDuplicateName is logged when a territory or actor name is already taken
	// (case-insensitive).
	ErrDuplicateName = errors.New("game: duplicate name")

	// ErrUnknownTerritory is logged when an argument territory is not on the map.
	ErrUnknownTerritory = errors.New("game: territory not on the map")

	// ErrUnknownActor is logged when an argument actor is not in the world.
	ErrUnknownActor = errors.New("game: actor not in the world")

	// ErrTerritoryHeld is logged when a home territory already has a live owner.
	ErrTerritoryHeld = errors.New("game: territory already held")
)

// Operation names, used as the metrics "operation" label and in log messages.
const (
	OpInsertLocale          = "insert_locale"
	OpInsertRoad            = "insert_road"
	OpInsertActor           = "insert_actor"
	OpInsertAlliance        = "insert_alliance"
	OpRemoveLocale          = "remove_locale"
	OpRemoveActor           = "remove_actor"
	OpAssignTerritory       = "assign_territory"
	OpCheapestPath          = "cheapest_path"
	OpConquestCost          = "conquest_cost"
	OpBestConquestCandidate = "best_conquest_candidate"
	OpProposeAlliance       = "propose_alliance"
	OpAllPossibleAlliances  = "all_possible_alliances"
	OpBestAllyForConquest   = "best_ally_for_conquest"
)

// Base is the in-process world: the road graph, the alliance graph and the
// owner table that resolves territory owners to actors.
//
// Every method is safe for concurrent use. Graphs returned by Roads and
// Actors are the live ones; callers must not mutate them while other
// goroutines use the Base.
type Base struct {
	mu sync.RWMutex

	roads  *world.RoadGraph
	actors *world.ActorGraph
	owners world.Registry

	engine   *alliance.Engine
	log      *slog.Logger
	metrics  *metrics.Collector
	validate *validator.Validate

	roadOpts []core.GraphOption
}

// Option configures a Base.
type Option func(*Base)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(b *Base) {
		if l != nil {
			b.log = l
		}
	}
}

// WithMetrics records every operation into c.
func WithMetrics(c *metrics.Collector) Option {
	return func(b *Base) { b.metrics = c }
}

// WithEngine sets the alliance engine used by ProposeAlliance and
// AllPossibleAlliances.
func WithEngine(e *alliance.Engine) Option {
	return func(b *Base) {
		if e != nil {
			b.engine = e
		}
	}
}

// WithDenseRoads backs the road graph with an adjacency matrix.
func WithDenseRoads() Option {
	return func(b *Base) { b.roadOpts = append(b.roadOpts, core.WithDenseStorage()) }
}
