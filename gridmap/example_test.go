package gridmap_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridroute/gridmap"
)

// ExampleLoad decodes a small terrain map and inspects it.
func ExampleLoad() {
	doc := `
terrain:
  - "1#1"
  - "121"
origins: [[0, 0]]
destinations: [[0, 2]]
`
	m, err := gridmap.Load(strings.NewReader(doc))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rows, cols := m.Size()
	fmt.Printf("%dx%d grid, origin %v, destination %v\n", rows, cols, m.Origins()[0], m.Destinations()[0])
	fmt.Println("passable (0,1):", m.Passable(gridmap.At(0, 1)))
	fmt.Println("neighbors of (1,1):", m.Neighbors(gridmap.At(1, 1), nil))
	// Output:
	// 2x3 grid, origin (0,0), destination (0,2)
	// passable (0,1): false
	// neighbors of (1,1): [(0,1) (1,2) (1,0)]
}
