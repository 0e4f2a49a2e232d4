// Package route_test provides runnable examples for the route assembler.
package route_test

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridmap"
	"github.com/katalvlaran/gridroute/route"
)

// ExampleFinder_FindPath routes from the top-left corner through a waypoint
// in the bottom-left corner to the bottom-right corner.
//
//	O . .
//	. # .
//	W . D
func ExampleFinder_FindPath() {
	cells := gridmap.Uniform(3, 3, 1)
	cells[1][1] = gridmap.Wall
	m, _ := gridmap.New(cells,
		gridmap.WithOrigins(gridmap.At(0, 0)),
		gridmap.WithWaypoints(gridmap.At(2, 0)),
		gridmap.WithDestinations(gridmap.At(2, 2)),
	)

	f, _ := route.New(m)
	path, err := f.FindPath()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	fmt.Println("explored:", f.CoordinatesExplored())
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
	// explored: 8
}

// ExampleFinder_Find picks the cheaper of two origins and reports the
// visiting order of two waypoints given out of order.
func ExampleFinder_Find() {
	m, _ := gridmap.New(gridmap.Uniform(1, 8, 1),
		gridmap.WithOrigins(gridmap.At(0, 7), gridmap.At(0, 0)),
		gridmap.WithWaypoints(gridmap.At(0, 4), gridmap.At(0, 2)),
		gridmap.WithDestinations(gridmap.At(0, 5)),
	)

	f, _ := route.New(m, route.WithStrategy(route.HeldKarp))
	res, err := f.Find()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("origin:", res.Origin)
	fmt.Println("order:", res.Order)
	fmt.Println("cost:", res.Cost)
	fmt.Println("strategy:", res.Strategy)
	// Output:
	// origin: (0,0)
	// order: [(0,2) (0,4)]
	// cost: 5
	// strategy: heldkarp
}
