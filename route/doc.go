// Package route assembles minimum-cost routes over a terrain grid: start at
// one of several origins, visit every mandatory waypoint in some order, and
// finish at one of several destinations.
//
// Overview:
//
//   - Finder.Find runs dijkstra.Compute once per distinct origin and
//     waypoint, prefetches the pairwise leg costs into dense matrices, then
//     searches all (origin, waypoint ordering, destination) chains for the
//     cheapest one and stitches its segments into one coordinate sequence.
//   - Finder.FindPath returns just the coordinate sequence.
//
// Search strategies:
//
//   - Permutations: enumerate origins × destinations × waypoint orderings,
//     orderings in lexicographic order of waypoint indices (iterative
//     next-permutation). The count of orderings is |W|!, so the search is
//     factorial in the number of waypoints. Partial sums are pruned as soon
//     as they reach the incumbent total; the first chain found wins ties.
//   - HeldKarp: dynamic program over (visited-waypoint bitmask, last
//     waypoint), O(2^W · W² + W·(|O|+|D|)) time and O(2^W · W) memory.
//     Same minimum cost; equal-cost ties may resolve to a different chain.
//   - Auto (default): Permutations up to 8 waypoints, HeldKarp above.
//
// Concurrency:
//
//   - SSSP runs are independent and run on an errgroup limited to
//     WithWorkers goroutines. The permutation search fans out per origin and
//     merges with a min-reduction preferring the lower origin index, so the
//     result is identical to the sequential search.
//   - Cost tables are owned by a single Find call and never mutated after
//     their run completes; nothing is locked on the hot path.
//
// Deadlines:
//
//   - WithContext / WithTimeLimit bound the search. When the deadline hits
//     during enumeration, the best chain found so far is returned with
//     Result.Partial set; if none was found, the error wraps ErrTimeLimit.
//     Deadlines during the SSSP phase or Held–Karp always yield ErrTimeLimit.
//
// Errors:
//
//   - ErrNilMap:                 New was given a nil map.
//   - ErrNoOriginOrDestination:  empty origin or destination registry.
//   - ErrInvalidSource:          origin or waypoint out of bounds or impassable.
//   - ErrUnreachable:            every chain has an unreachable leg.
//   - ErrTimeLimit:              deadline hit before any valid chain.
//   - ErrTooManyWaypoints:       HeldKarp requested for more than 20 waypoints.
//
// All errors are terminal for one call; the computation is deterministic,
// so retrying yields the same outcome.
package route
