// Package gridmap models a rectangular terrain map for grid routing.
//
// What:
//
//   - Map wraps a rows×cols grid of Cells, each with a non-negative terrain
//     cost and an impassable flag.
//   - Map carries three ordered registries of Coordinates: origins,
//     destinations and waypoints.
//   - Load reads a Map from a small YAML document.
//
// Why:
//
//   - Game maps: terrain with movement costs and walls.
//   - Routing exercises: choose the cheapest origin/destination pair that
//     visits every mandatory waypoint.
//
// Conventions:
//
//   - Coordinates are (Row, Col), zero-based, Row growing downwards.
//   - Cells are stored row-major; Index and Coordinate convert between a
//     Coordinate and its flat index.
//   - Neighbors are 4-connected and always produced in the order N, E, S, W.
//   - A Map is immutable after construction and safe for concurrent reads.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeCost: a cell cost is negative, NaN or infinite.
//   - ErrOutOfBounds: a registry coordinate lies outside the grid.
//   - ErrDuplicateCoordinate: a coordinate repeats within one registry.
//   - ErrInvalidMapFile: a YAML map document could not be decoded.
//
// Complexity:
//
//   - New:       O(R×C) time and memory (deep copy).
//   - CellAt:    O(1).
//   - Neighbors: O(1).
package gridmap
