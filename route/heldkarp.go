package route

import (
	"context"
	"fmt"
	"math"
)

// heldKarp finds the cheapest origin → all waypoints → destination chain
// with the Held–Karp subset dynamic program.
//
// dp[mask*w+j] = minimum cost to leave some origin, visit exactly the
// waypoints in mask, and stand on waypoint j (j ∈ mask).
// parent[mask*w+j] = the waypoint visited before j, or -1 when j was the
// first waypoint; start[j] = cheapest origin for the first hop to j.
//
// Ties keep the lowest index at every step (origins, predecessors, then
// last waypoint, then destination). With no waypoints there is nothing to
// order and the direct origin → destination scan is used.
//
// Time complexity:   O(2^w · w² + w·(|O|+|D|))
// Memory complexity: O(2^w · w)
func heldKarp(ctx context.Context, lg *legs) (incumbent, int, error) {
	w := lg.w
	if w == 0 {
		return directScan(lg), lg.o * lg.d, nil
	}

	inf := math.Inf(1)
	full := (1 << w) - 1

	// --- 1. Cheapest origin per first waypoint ---
	start := make([]int, w)
	dp := make([]float64, (full+1)*w)
	parent := make([]int8, (full+1)*w)
	for i := range dp {
		dp[i] = inf
		parent[i] = -1
	}
	for j := 0; j < w; j++ {
		start[j] = -1
		for o := 0; o < lg.o; o++ {
			c := lg.originWp[o*w+j]
			if c < dp[(1<<j)*w+j] {
				dp[(1<<j)*w+j] = c
				start[j] = o
			}
		}
	}

	// --- 2. Fill DP in increasing mask order ---
	states := 0
	for mask := 1; mask <= full; mask++ {
		if mask%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return incumbent{}, states, fmt.Errorf("%w: %w", ErrTimeLimit, err)
			}
		}
		for j := 0; j < w; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			if prev == 0 {
				continue // seeded in step 1
			}
			states++
			cell := mask*w + j
			for k := 0; k < w; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				from := dp[prev*w+k]
				c := lg.wpWp[k*w+j]
				if math.IsInf(from, 1) || math.IsInf(c, 1) {
					continue
				}
				if cand := from + c; cand < dp[cell] {
					dp[cell] = cand
					parent[cell] = int8(k)
				}
			}
		}
	}

	// --- 3. Close against destinations ---
	best := incumbent{}
	last := -1
	for j := 0; j < w; j++ {
		at := dp[full*w+j]
		if math.IsInf(at, 1) {
			continue
		}
		for d := 0; d < lg.d; d++ {
			c := lg.wpDest[j*lg.d+d]
			if math.IsInf(c, 1) {
				continue
			}
			if total := at + c; best.better(total) {
				best.found = true
				best.cost = total
				best.dest = d
				last = j
			}
		}
	}
	if !best.found {
		return best, states, nil
	}

	// --- 4. Reconstruct order from parent table ---
	order := make([]int, w)
	mask, j := full, last
	for i := w - 1; i >= 0; i-- {
		order[i] = j
		p := int(parent[mask*w+j])
		mask ^= 1 << j
		j = p
	}
	best.order = order
	best.origin = start[order[0]]

	return best, states, nil
}

// directScan picks the cheapest origin → destination pair, origins outer,
// first found on ties.
func directScan(lg *legs) incumbent {
	var best incumbent
	for o := 0; o < lg.o; o++ {
		for d := 0; d < lg.d; d++ {
			c := lg.originDest[o*lg.d+d]
			if math.IsInf(c, 1) || !best.better(c) {
				continue
			}
			best = incumbent{found: true, cost: c, origin: o, dest: d, order: []int{}}
		}
	}
	return best
}
