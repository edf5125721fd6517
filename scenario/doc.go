// Package scenario loads conquest worlds from YAML.
//
// A scenario declares the alliance engine settings, the road graph backing
// and the initial world:
//
//	engine:
//	  fallback_min: 0.2
//	  path_policy: hops   # or "power" (default)
//	  seed: 42
//	storage:
//	  dense_roads: true
//	territories:
//	  - {name: Rome, cost: 2}
//	  - {name: Milan, cost: 1}
//	roads:
//	  - {from: Rome, to: Milan, cost: 5}
//	actors:
//	  - {name: Caesar, strength: 10, home: Rome, holdings: [Milan]}
//
// Load validates field constraints (go-playground/validator); Build replays
// the records through a game.Base and fails on the first rejected one.
package scenario
