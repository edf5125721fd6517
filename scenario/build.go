// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"

	"github.com/katalvlaran/conquest/alliance"
	"github.com/katalvlaran/conquest/game"
	"github.com/katalvlaran/conquest/gridgraph"
	"github.com/katalvlaran/conquest/world"
)

// Build creates a world from s. Records are applied in document order:
// grid, territories, roads, actors (home, then holdings), alliances. opts are
// applied after the scenario's own engine and storage settings, so a caller's
// WithEngine wins.
func Build(s *Scenario, opts ...game.Option) (*game.Base, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scenario", ErrInvalidScenario)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	engineOpts, _ := s.Engine.options()
	engine, err := alliance.NewEngine(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	base := []game.Option{game.WithEngine(engine)}
	if s.Storage.DenseRoads {
		base = append(base, game.WithDenseRoads())
	}
	b := game.New(append(base, opts...)...)

	if s.Grid != nil {
		if err := addGrid(b, s.Grid); err != nil {
			return nil, err
		}
	}
	for _, t := range s.Territories {
		if !b.InsertLocale(t.Name, t.Cost) {
			return nil, fmt.Errorf("%w: territory %q", ErrRejected, t.Name)
		}
	}
	for _, r := range s.Roads {
		from, err := locale(b, r.From)
		if err != nil {
			return nil, err
		}
		to, err := locale(b, r.To)
		if err != nil {
			return nil, err
		}
		if !b.InsertRoad(r.Cost, from, to) {
			return nil, fmt.Errorf("%w: road %s–%s", ErrRejected, r.From, r.To)
		}
	}
	for _, a := range s.Actors {
		if err := addActor(b, a); err != nil {
			return nil, err
		}
	}
	for _, al := range s.Alliances {
		if err := addAlliance(b, al); err != nil {
			return nil, err
		}
	}

	return b, nil
}

func (g *Grid) options() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	if g.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	if g.LandThreshold != nil {
		opts.LandThreshold = *g.LandThreshold
	}
	if g.RoadCost != nil {
		opts.RoadCost = *g.RoadCost
	}

	return opts
}

func addGrid(b *game.Base, g *Grid) error {
	gg, err := gridgraph.NewGridGraph(g.Cells, g.options())
	if err != nil {
		return fmt.Errorf("%w: grid: %v", ErrInvalidScenario, err)
	}
	for _, c := range gg.Cells() {
		if !b.InsertLocale(c.Name(), float64(c.Value)) {
			return fmt.Errorf("%w: grid territory %q", ErrRejected, c.Name())
		}
	}
	for _, l := range gg.Links() {
		from, to := b.SearchLocale(l[0].Name()), b.SearchLocale(l[1].Name())
		if !b.InsertRoad(gg.RoadCost, from, to) {
			return fmt.Errorf("%w: grid road %s–%s", ErrRejected, l[0].Name(), l[1].Name())
		}
	}

	return nil
}

func addActor(b *game.Base, a Actor) error {
	home, err := locale(b, a.Home)
	if err != nil {
		return err
	}
	if !b.InsertActor(a.Name, a.Strength, home) {
		return fmt.Errorf("%w: actor %q", ErrRejected, a.Name)
	}
	actor := b.SearchActor(a.Name)
	for _, name := range a.Holdings {
		t, err := locale(b, name)
		if err != nil {
			return err
		}
		if !b.AssignTerritory(actor, t) {
			return fmt.Errorf("%w: %q holding %q", ErrRejected, a.Name, name)
		}
	}

	return nil
}

func addAlliance(b *game.Base, al Alliance) error {
	x, err := member(b, al.A)
	if err != nil {
		return err
	}
	y, err := member(b, al.B)
	if err != nil {
		return err
	}
	if al.Propose {
		if b.ProposeAlliance(x, y) == nil {
			return fmt.Errorf("%w: proposal %s–%s", ErrRejected, al.A, al.B)
		}
		return nil
	}
	power := (x.Strength + y.Strength) * al.Compatibility
	if al.Power != nil {
		power = *al.Power
	}
	if !b.InsertAlliance(al.Private, al.Compatibility, power, x, y) {
		return fmt.Errorf("%w: alliance %s–%s", ErrRejected, al.A, al.B)
	}

	return nil
}

func locale(b *game.Base, name string) (*world.Territory, error) {
	t := b.SearchLocale(name)
	if !b.Roads().HasVertex(t) {
		return nil, fmt.Errorf("%w: territory %q", ErrUnknownReference, name)
	}

	return t, nil
}

func member(b *game.Base, name string) (*world.Actor, error) {
	a := b.SearchActor(name)
	if !b.Actors().HasVertex(a) {
		return nil, fmt.Errorf("%w: actor %q", ErrUnknownReference, name)
	}

	return a, nil
}
