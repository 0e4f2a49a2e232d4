// Package gridroute finds the cheapest route across a weighted terrain grid
// that starts at one of several origins, visits every mandatory waypoint in
// the best order and ends at one of several destinations.
//
// 🚀 What is gridroute?
//
//	A small, dependency-light routing engine built from:
//		• gridmap:    Coordinate, Cell and an immutable Map (YAML loading)
//		• dijkstra:   single-source shortest paths over a 4-connected grid
//		• route:      origin × waypoint-order × destination search, stitched path
//		• render:     ASCII and PNG views of a map and its route
//		• routecache: SQLite store of solved routes keyed by map digest
//
// ✨ Guarantees
//
//   - Deterministic – equal-cost ties always resolve the same way
//   - Exact – every chain is priced from true shortest-path legs
//   - Parallel – SSSP runs and the chain search fan out on an errgroup
//     and still return the sequential answer
//   - Bounded – optional context / time limit with partial results
//
// Layout:
//
//	gridmap/        Map, Coordinate, Cell, YAML map files
//	dijkstra/       Compute, Table (costs, predecessors, PathTo)
//	route/          Finder, Permutations and Held–Karp strategies
//	render/         ASCII, Image, PNG
//	routecache/     SQLite-backed result cache
//	cmd/gridroute/  command-line driver
//	examples/       sample maps
//
// Quick ASCII example:
//
//	O . .
//	* # .
//	W * D
//
// is the cheapest route from O through W to D around a single wall.
//
//	go install github.com/katalvlaran/gridroute/cmd/gridroute@latest
package gridroute
