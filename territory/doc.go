// Package territory implements the territory engine: derived road graphs and
// the cost queries used to rank invasion routes.
//
// Derived graphs:
//
//	CostProjection(roads)            same vertices, payload and weight = road cost
//	RestrictedWorld(roads, owner)    roads without one owner's territories
//
// Both return independent graphs; the live road graph is never mutated.
// Vertex labels are the live *world.Territory pointers, so routes computed on
// a derived graph reference the same territory records as the input.
//
// Queries:
//
//	ConquestCost(roads, owners, attacker, route)
//	BestConquestCandidate(roads, actor, destination)
package territory
