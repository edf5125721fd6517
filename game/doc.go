// Package game is the in-process query surface of a conquest world.
//
// A Base owns the road graph (territories and roads), the alliance graph
// (actors and alliances) and the owner table. Its methods never return
// errors: they follow the sentinel contract of the world API.
//
//	InsertLocale / InsertRoad / InsertActor / InsertAlliance    false = unchanged
//	SearchLocale / SearchActor                                   empty entity when absent
//	CheapestPath / BestConquestCandidate / BestAllyForConquest   -1 when impossible
//	ProposeAlliance                                              nil on rejection
//	StrongestAllianceBloc                                        0 with no alliances
//
// Every rejection is logged at Debug level together with the underlying
// error (a sentinel from core, dijkstra, territory, alliance or this
// package), and counted by the optional metrics collector under
// outcome="rejected".
//
// Example:
//
//	b := game.New(game.WithLogger(slog.Default()))
//	b.InsertLocale("Rome", 1)
//	b.InsertLocale("Milan", 2)
//	b.InsertRoad(3, b.SearchLocale("rome"), b.SearchLocale("milan"))
//	d, route := b.CheapestPath(b.SearchLocale("Rome"), b.SearchLocale("Milan"))
package game
