// Package dijkstra computes single-source shortest paths over a 4-connected
// weighted grid.
//
// Overview:
//
//   - Compute runs Dijkstra's algorithm from one source cell and returns a
//     Table with, for every reachable cell, the minimum cumulative cost and
//     the predecessor on one cheapest path back to the source.
//   - Moving into a cell costs that cell's terrain cost. The source costs 0.
//   - Impassable cells are never entered and never appear in a Table.
//     Cells cut off by walls are simply absent, never present with +Inf.
//
// Key features:
//
//   - Binary min-heap frontier with lazy decrease-key: a cheaper tentative
//     cost pushes a fresh entry and stale entries are skipped on extraction.
//   - Deterministic ties: equal tentative costs are extracted in insertion
//     order and neighbors are relaxed in N, E, S, W order, so repeated runs
//     yield identical predecessor chains.
//   - WithContext: cooperative cancellation for very large grids.
//   - WithMaxCost: stop finalizing cells beyond a cost budget.
//
// Performance and complexity:
//
//   - Time:  O(C log C) for C = rows×cols; each cell is finalized once and
//     pushed at most four times.
//   - Space: O(C) for the table plus O(C) heap entries in the worst case.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:       Compute was given a nil Grid.
//   - ErrInvalidSource: the source is out of bounds or impassable.
//   - ErrNegativeCost:  a negative or NaN terrain cost was met while relaxing.
//   - ErrUnreachable:   Table.PathTo asked for a cell the run never reached.
//
// Thread safety:
//
//   - Compute only reads the Grid; concurrent runs over one immutable grid
//     are safe. A Table is read-only once returned.
package dijkstra
