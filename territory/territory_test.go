// SPDX-License-Identifier: MIT

package territory_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/territory"
	"github.com/katalvlaran/conquest/world"
)

// fixture is a five-territory, two-owner world:
//
//	A(1)──3──B(2)──1──C(1)──2──D(4)──1──E(2)
//	 └────────────── 10 ───────────────┘ (A–E)
//
// X holds A and B, Y holds D; C and E are free.
type fixture struct {
	roads      *world.RoadGraph
	owners     world.Registry
	x, y       *world.Actor
	a, b, c, d *world.Territory
	e          *world.Territory
}

func newFixture(t *testing.T, opts ...core.GraphOption) *fixture {
	t.Helper()
	f := &fixture{
		roads: world.NewRoadGraph(opts...),
		a:     &world.Territory{Name: "A", Cost: 1},
		b:     &world.Territory{Name: "B", Cost: 2},
		c:     &world.Territory{Name: "C", Cost: 1},
		d:     &world.Territory{Name: "D", Cost: 4},
		e:     &world.Territory{Name: "E", Cost: 2},
	}
	for _, tr := range []*world.Territory{f.a, f.b, f.c, f.d, f.e} {
		require.NoError(t, f.roads.AddVertex(tr))
	}
	road := func(cost float64, p, q *world.Territory) {
		require.NoError(t, f.roads.AddEdge(p, q, &world.Road{Cost: cost, A: p, B: q}, cost))
	}
	road(3, f.a, f.b)
	road(1, f.b, f.c)
	road(2, f.c, f.d)
	road(1, f.d, f.e)
	road(10, f.a, f.e)

	f.x = world.NewActor("X", 10, f.a)
	f.x.Claim(f.b)
	f.y = world.NewActor("Y", 5, f.d)
	f.owners = world.Registry{}
	f.owners.Add(f.x)
	f.owners.Add(f.y)

	return f
}

func TestCostProjection_PreservesIdentity(t *testing.T) {
	f := newFixture(t)
	proj := territory.CostProjection(f.roads)

	assert.Equal(t, f.roads.KeyedVertices(), proj.KeyedVertices())
	e, ok := proj.Edge(f.b, f.a)
	require.True(t, ok)
	assert.Same(t, f.a, e.From)
	assert.Equal(t, 3.0, e.Payload)
	assert.Equal(t, 3.0, e.Weight)
	assert.Equal(t, f.roads.EdgeCount(), proj.EdgeCount())
}

func TestRestrictedWorld(t *testing.T) {
	for _, opts := range [][]core.GraphOption{nil, {core.WithDenseStorage()}} {
		f := newFixture(t, opts...)
		r := territory.RestrictedWorld(f.roads, f.x.ID)

		assert.ElementsMatch(t, []*world.Territory{f.c, f.d, f.e}, r.KeyedVertices(),
			"vertex set is the complement of X's holdings")
		for e := range r.Edges() {
			assert.False(t, f.x.Owns(e.From) || f.x.Owns(e.To), "road %v–%v touches a removed territory", e.From, e.To)
		}
		assert.Equal(t, 2, r.EdgeCount())
		assert.Equal(t, 5, f.roads.VertexCount(), "live world untouched")

		assert.Equal(t, 5, territory.RestrictedWorld(f.roads, uuid.Nil).VertexCount())
	}
}

func TestConquestCost(t *testing.T) {
	f := newFixture(t)

	// X: A→B→C→D: roads 3+1+2, B is X's own (0), C is free (1).
	got, err := territory.ConquestCost(f.roads, f.owners, f.x, []*world.Territory{f.a, f.b, f.c, f.d})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	// X: A→E→D: roads 10+1, E free (2).
	got, err = territory.ConquestCost(f.roads, f.owners, f.x, []*world.Territory{f.a, f.e, f.d})
	require.NoError(t, err)
	assert.Equal(t, 13.0, got)

	// Y: C→D→E passes through its own D.
	got, err = territory.ConquestCost(f.roads, f.owners, f.y, []*world.Territory{f.c, f.d, f.e})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	// X through Y's D: road 2+1, D defends with cost 4 + Y's strength 5.
	got, err = territory.ConquestCost(f.roads, f.owners, f.x, []*world.Territory{f.c, f.d, f.e})
	require.NoError(t, err)
	assert.Equal(t, 12.0, got)

	// Dangling owner contributes only the territory cost.
	f.owners.Forget(f.y)
	got, err = territory.ConquestCost(f.roads, f.owners, f.x, []*world.Territory{f.c, f.d, f.e})
	require.NoError(t, err)
	assert.Equal(t, 7.0, got)

	_, err = territory.ConquestCost(f.roads, f.owners, f.x, []*world.Territory{f.a, f.c})
	assert.ErrorIs(t, err, territory.ErrBrokenRoute)
	_, err = territory.ConquestCost(f.roads, f.owners, f.x, []*world.Territory{f.a, {Name: "ghost"}})
	assert.ErrorIs(t, err, territory.ErrTerritoryNotFound)
	_, err = territory.ConquestCost(f.roads, f.owners, nil, nil)
	assert.ErrorIs(t, err, territory.ErrNilActor)
}

func TestBestConquestCandidate(t *testing.T) {
	f := newFixture(t)

	// From A to E: direct 10, via B–C–D 1+2+1 = 4 from B.
	c, err := territory.BestConquestCandidate(f.roads, f.x, f.e)
	require.NoError(t, err)
	assert.Same(t, f.b, c.Origin)
	assert.Equal(t, []*world.Territory{f.b, f.c, f.d, f.e}, c.Route)
	assert.Equal(t, 4.0, c.Distance)

	_, err = territory.BestConquestCandidate(f.roads, f.x, f.a)
	assert.ErrorIs(t, err, territory.ErrAlreadyOwned)

	nobody := world.NewActor("Nobody", 1, nil)
	_, err = territory.BestConquestCandidate(f.roads, nobody, f.e)
	assert.ErrorIs(t, err, territory.ErrNoCandidate)

	island := &world.Territory{Name: "Island", Cost: 1}
	require.NoError(t, f.roads.AddVertex(island))
	_, err = territory.BestConquestCandidate(f.roads, f.x, island)
	assert.ErrorIs(t, err, territory.ErrNoCandidate)

	_, err = territory.BestConquestCandidate(f.roads, f.x, &world.Territory{Name: "ghost"})
	assert.ErrorIs(t, err, territory.ErrTerritoryNotFound)
}

func TestBestConquestCandidate_TieKeepsFirstOwned(t *testing.T) {
	roads := world.NewRoadGraph()
	p := &world.Territory{Name: "P"}
	q := &world.Territory{Name: "Q"}
	goal := &world.Territory{Name: "Goal"}
	for _, tr := range []*world.Territory{p, q, goal} {
		require.NoError(t, roads.AddVertex(tr))
	}
	require.NoError(t, roads.AddEdge(p, goal, &world.Road{Cost: 2, A: p, B: goal}, 2))
	require.NoError(t, roads.AddEdge(q, goal, &world.Road{Cost: 2, A: q, B: goal}, 2))

	actor := world.NewActor("Twin", 1, q)
	actor.Claim(p)
	c, err := territory.BestConquestCandidate(roads, actor, goal)
	require.NoError(t, err)
	assert.Same(t, q, c.Origin, "q was claimed first")
}
