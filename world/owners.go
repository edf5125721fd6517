// SPDX-License-Identifier: MIT

package world

import "github.com/google/uuid"

// Owners resolves owner identifiers to actors.
type Owners interface {
	Owner(id uuid.UUID) (*Actor, bool)
}

// Registry is a map-backed Owners table.
type Registry map[uuid.UUID]*Actor

// Owner implements Owners. uuid.Nil never resolves.
func (r Registry) Owner(id uuid.UUID) (*Actor, bool) {
	if id == uuid.Nil {
		return nil, false
	}
	a, ok := r[id]

	return a, ok
}

// Add registers a under its identifier.
func (r Registry) Add(a *Actor) { r[a.ID] = a }

// Forget removes a from the table; territories keep the now dangling id.
func (r Registry) Forget(a *Actor) { delete(r, a.ID) }

// RegistryOf builds a Registry from every actor of g.
func RegistryOf(g *ActorGraph) Registry {
	r := make(Registry, g.VertexCount())
	for a := range g.Vertices() {
		r.Add(a)
	}

	return r
}
