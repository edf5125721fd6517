// SPDX-License-Identifier: MIT

package alliance_test

import (
	"fmt"

	"github.com/katalvlaran/conquest/alliance"
	"github.com/katalvlaran/conquest/world"
)

// ExampleEngine_Propose derives the factor of a new alliance from the public
// alliances already linking the two actors.
func ExampleEngine_Propose() {
	actors := world.NewActorGraph()
	x := world.NewActor("X", 10, nil)
	y := world.NewActor("Y", 5, nil)
	z := world.NewActor("Z", 5, nil)
	for _, a := range []*world.Actor{x, y, z} {
		_ = actors.AddVertex(a)
	}
	_ = actors.AddEdge(x, y, &world.Alliance{Compatibility: 0.8, Power: 4, A: x, B: y}, 4)
	_ = actors.AddEdge(y, z, &world.Alliance{Compatibility: 0.4, Power: 2, A: y, B: z}, 2)

	engine, _ := alliance.NewEngine()
	al, err := engine.Propose(actors, x, z)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(al)
	fmt.Printf("%.2f\n", alliance.StrongestBloc(actors).Power)
	// Output:
	// X–Z (public, compat=0.60, power=9.00)
	// 9.00
}
