// SPDX-License-Identifier: MIT

package territory

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/world"
)

// CostProjection returns a graph over the same territories whose edges carry
// only the numeric road cost, as payload and as weight.
func CostProjection(roads *world.RoadGraph) *core.Graph[*world.Territory, float64] {
	return core.MapEdges(roads, func(e *core.Edge[*world.Territory, *world.Road]) (float64, float64) {
		return e.Payload.Cost, e.Payload.Cost
	})
}

// RestrictedWorld returns the road graph induced by every territory not owned
// by excluded; roads incident to a removed territory are gone with it.
// uuid.Nil excludes nothing and yields a plain clone.
func RestrictedWorld(roads *world.RoadGraph, excluded uuid.UUID) *world.RoadGraph {
	if excluded == uuid.Nil {
		return roads.Clone()
	}

	return core.InducedSubgraph(roads, func(t *world.Territory) bool {
		return t.Owner != excluded
	})
}
