// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: world records and graph aliases.

package world

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/conquest/core"
)

// Territory is a place on the map. The zero value is the empty default
// returned by name lookups that find nothing.
type Territory struct {
	Name  string  `validate:"required"`
	Cost  float64 `validate:"gte=0"`
	Owner uuid.UUID
}

// String implements fmt.Stringer.
func (t *Territory) String() string {
	if t == nil {
		return "<nil territory>"
	}

	return t.Name
}

// Owned reports whether the territory carries an owner identifier at all
// (which may or may not still resolve).
func (t *Territory) Owned() bool { return t.Owner != uuid.Nil }

// Road connects two territories with a traversal cost.
type Road struct {
	Cost float64    `validate:"gte=0"`
	A    *Territory `validate:"required"`
	B    *Territory `validate:"required"`
}

// Actor is an independent player of the world.
type Actor struct {
	ID          uuid.UUID
	Name        string  `validate:"required"`
	Strength    float64 `validate:"gte=0"`
	Territories []*Territory
}

// NewActor returns an actor with a fresh identifier. A non-nil home is
// claimed immediately.
func NewActor(name string, strength float64, home *Territory) *Actor {
	a := &Actor{ID: uuid.New(), Name: name, Strength: strength}
	if home != nil {
		a.Claim(home)
	}

	return a
}

// String implements fmt.Stringer.
func (a *Actor) String() string {
	if a == nil {
		return "<nil actor>"
	}

	return a.Name
}

// Owns reports whether t is currently held by a.
func (a *Actor) Owns(t *Territory) bool {
	return t != nil && a.ID != uuid.Nil && t.Owner == a.ID
}

// Claim makes a the owner of t and records the back-reference. Claiming an
// already held territory is a no-op. The previous owner's back-reference
// must be dropped by the caller with Release.
func (a *Actor) Claim(t *Territory) {
	if a.Owns(t) && slices.Contains(a.Territories, t) {
		return
	}
	t.Owner = a.ID
	a.Territories = append(a.Territories, t)
}

// Release drops the back-reference to t and clears its owner if a held it.
func (a *Actor) Release(t *Territory) {
	a.Territories = slices.DeleteFunc(a.Territories, func(x *Territory) bool { return x == t })
	if a.Owns(t) {
		t.Owner = uuid.Nil
	}
}

// Alliance is an unordered pair of actors. Compatibility is in [0,1].
type Alliance struct {
	Private       bool
	Compatibility float64 `validate:"gte=0,lte=1"`
	Power         float64 `validate:"gte=0"`
	A             *Actor  `validate:"required"`
	B             *Actor  `validate:"required"`
}

// Other returns the member of the alliance that is not x, or nil if x is
// not a member.
func (al *Alliance) Other(x *Actor) *Actor {
	switch x {
	case al.A:
		return al.B
	case al.B:
		return al.A
	}

	return nil
}

// String implements fmt.Stringer.
func (al *Alliance) String() string {
	vis := "public"
	if al.Private {
		vis = "private"
	}

	return fmt.Sprintf("%s–%s (%s, compat=%.2f, power=%.2f)", al.A, al.B, vis, al.Compatibility, al.Power)
}

// RoadGraph is the undirected territory graph; edge weight == Road.Cost.
type RoadGraph = core.Graph[*Territory, *Road]

// ActorGraph is the undirected alliance graph; edge weight == Alliance.Power.
type ActorGraph = core.Graph[*Actor, *Alliance]

// NewRoadGraph returns an empty road graph. Options select the backing.
func NewRoadGraph(opts ...core.GraphOption) *RoadGraph {
	return core.NewGraph[*Territory, *Road](opts...)
}

// NewActorGraph returns an empty alliance graph. Options select the backing.
func NewActorGraph(opts ...core.GraphOption) *ActorGraph {
	return core.NewGraph[*Actor, *Alliance](opts...)
}
