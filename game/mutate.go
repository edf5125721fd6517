// SPDX-License-Identifier: MIT
//
// File: mutate.go
// Role: world inserts and removals.
//
// Every operation validates its arguments before touching a graph; a false
// result means the world is unchanged.

package game

import (
	"fmt"
	"time"

	"github.com/katalvlaran/conquest/alliance"
	"github.com/katalvlaran/conquest/world"
)

// InsertLocale adds a territory. False on a duplicate name or invalid cost.
func (b *Base) InsertLocale(name string, cost float64) bool {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	t := &world.Territory{Name: name, Cost: cost}
	err := b.validate.Struct(t)
	if err == nil && lastByName(b.roads, name, territoryName) != nil {
		err = fmt.Errorf("%w: territory %q", ErrDuplicateName, name)
	}
	if err == nil {
		err = b.roads.AddVertex(t)
	}
	if !b.done(OpInsertLocale, start, err) {
		return false
	}
	b.log.Info("territory inserted", "name", name, "cost", cost)
	b.resize()

	return true
}

// InsertRoad links t1 and t2 with a road of the given cost. False when an
// endpoint is not on the map, the road exists, or the cost is invalid.
func (b *Base) InsertRoad(cost float64, t1, t2 *world.Territory) bool {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	r := &world.Road{Cost: cost, A: t1, B: t2}
	err := b.validate.Struct(r)
	if err == nil {
		err = b.roads.AddEdge(t1, t2, r, cost)
	}
	if !b.done(OpInsertRoad, start, err) {
		return false
	}
	b.log.Info("road inserted", "from", t1, "to", t2, "cost", cost)

	return true
}

// InsertActor adds an actor holding home. False on a duplicate name, a home
// that is not on the map or already has a live owner, or invalid strength.
func (b *Base) InsertActor(name string, strength float64, home *world.Territory) bool {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.validate.Struct(&world.Actor{Name: name, Strength: strength})
	switch {
	case err != nil:
	case lastByName(b.actors, name, actorName) != nil:
		err = fmt.Errorf("%w: actor %q", ErrDuplicateName, name)
	case home == nil || !b.roads.HasVertex(home):
		err = fmt.Errorf("%w: %v", ErrUnknownTerritory, home)
	default:
		if holder, ok := b.owners.Owner(home.Owner); ok {
			err = fmt.Errorf("%w: %v by %v", ErrTerritoryHeld, home, holder)
		}
	}
	var a *world.Actor
	if err == nil {
		// Claim only after the vertex is in, so a failed insert leaves home untouched.
		a = world.NewActor(name, strength, nil)
		if err = b.actors.AddVertex(a); err == nil {
			a.Claim(home)
			b.owners.Add(a)
		}
	}
	if !b.done(OpInsertActor, start, err) {
		return false
	}
	b.log.Info("actor inserted", "name", name, "strength", strength, "home", home, "id", a.ID)
	b.resize()

	return true
}

// InsertAlliance records an existing alliance between a and b with weight
// power. False when a == b, either actor is not in the world, they are already
// allied, or compat/power are out of range.
func (b *Base) InsertAlliance(private bool, compat, power float64, a, c *world.Actor) bool {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	al := &world.Alliance{Private: private, Compatibility: compat, Power: power, A: a, B: c}
	err := b.validate.Struct(al)
	if err == nil && a == c {
		err = fmt.Errorf("%w: %v", alliance.ErrSelfAlliance, a)
	}
	if err == nil {
		err = b.actors.AddEdge(a, c, al, power)
	}
	if !b.done(OpInsertAlliance, start, err) {
		return false
	}
	b.log.Info("alliance inserted", "alliance", al.String())
	b.resize()

	return true
}

// RemoveLocale removes the territory named name with its roads and drops it
// from its owner's holdings.
func (b *Base) RemoveLocale(name string) bool {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	t := lastByName(b.roads, name, territoryName)
	if t == nil {
		err = fmt.Errorf("%w: %q", ErrUnknownTerritory, name)
	} else if err = b.roads.RemoveVertex(t); err == nil {
		if owner, ok := b.owners.Owner(t.Owner); ok {
			owner.Release(t)
		}
	}
	if !b.done(OpRemoveLocale, start, err) {
		return false
	}
	b.log.Info("territory removed", "name", t.Name)
	b.resize()

	return true
}

// RemoveActor removes the actor named name and its alliances. Its
// territories keep the owner id, which no longer resolves.
func (b *Base) RemoveActor(name string) bool {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	a := lastByName(b.actors, name, actorName)
	if a == nil {
		err = fmt.Errorf("%w: %q", ErrUnknownActor, name)
	} else if err = b.actors.RemoveVertex(a); err == nil {
		b.owners.Forget(a)
	}
	if !b.done(OpRemoveActor, start, err) {
		return false
	}
	b.log.Info("actor removed", "name", a.Name, "territories", len(a.Territories))
	b.resize()

	return true
}

// AssignTerritory transfers t to actor, releasing it from its previous live
// owner.
func (b *Base) AssignTerritory(actor *world.Actor, t *world.Territory) bool {
	start := time.Now()
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	switch {
	case actor == nil || !b.actors.HasVertex(actor):
		err = fmt.Errorf("%w: %v", ErrUnknownActor, actor)
	case t == nil || !b.roads.HasVertex(t):
		err = fmt.Errorf("%w: %v", ErrUnknownTerritory, t)
	}
	if !b.done(OpAssignTerritory, start, err) {
		return false
	}
	if prev, ok := b.owners.Owner(t.Owner); ok && prev != actor {
		prev.Release(t)
	}
	actor.Claim(t)
	b.log.Info("territory assigned", "territory", t, "actor", actor)

	return true
}

func territoryName(t *world.Territory) string { return t.Name }

func actorName(a *world.Actor) string { return a.Name }
