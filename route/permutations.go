package route

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"
)

// permSearch enumerates chains for a range of origins. One instance per
// goroutine; it only reads the shared leg matrices.
type permSearch struct {
	lg         *legs
	prune      bool
	ctx        context.Context
	checkEvery int
	chains     int
	stopped    bool
	perm       []int
}

func newPermSearch(ctx context.Context, lg *legs, prune bool) *permSearch {
	return &permSearch{
		lg:         lg,
		prune:      prune,
		ctx:        ctx,
		checkEvery: checkEvery,
		perm:       make([]int, lg.w),
	}
}

// searchPermutations runs the enumeration, fanned out per origin when more
// than one worker is configured. Reports the winner, the number of chains
// priced and whether a deadline stopped the search.
func (f *Finder) searchPermutations(ctx context.Context, lg *legs) (incumbent, int, bool) {
	if f.opts.Workers <= 1 || lg.o == 1 {
		s := newPermSearch(ctx, lg, f.opts.Prune)
		var best incumbent
		for o := 0; o < lg.o && !s.stopped; o++ {
			s.searchOrigin(o, &best)
		}
		return best, s.chains, s.stopped
	}

	// Per-origin fan-out. Merging in origin order with a strict comparison
	// reproduces the sequential first-found tie-break.
	locals := make([]incumbent, lg.o)
	searches := make([]*permSearch, lg.o)
	var g errgroup.Group
	g.SetLimit(f.opts.Workers)
	for o := 0; o < lg.o; o++ {
		s := newPermSearch(ctx, lg, f.opts.Prune)
		searches[o] = s
		g.Go(func() error {
			s.searchOrigin(o, &locals[o])
			return nil
		})
	}
	_ = g.Wait()

	var (
		best    incumbent
		chains  int
		stopped bool
	)
	for o := range locals {
		chains += searches[o].chains
		stopped = stopped || searches[o].stopped
		if locals[o].found && best.better(locals[o].cost) {
			best = locals[o]
		}
	}

	return best, chains, stopped
}

// searchOrigin prices every (destination, ordering) chain starting at
// origin o, destinations in registry order and orderings in lexicographic
// order, updating best on strict improvement.
func (s *permSearch) searchOrigin(o int, best *incumbent) {
	for d := 0; d < s.lg.d; d++ {
		for i := range s.perm {
			s.perm[i] = i
		}
		for {
			s.price(o, d, best)
			s.chains++
			if s.chains%s.checkEvery == 0 && s.ctx.Err() != nil {
				s.stopped = true
				return
			}
			if !nextPermutation(s.perm) {
				break
			}
		}
	}
}

// price sums the legs of origin o → perm... → destination d. A +Inf leg
// discards the chain; with pruning, so does a partial sum that already
// reaches the incumbent total (costs are non-negative).
func (s *permSearch) price(o, d int, best *incumbent) {
	lg := s.lg
	w := lg.w

	var total float64
	if w == 0 {
		total = lg.originDest[o*lg.d+d]
	} else {
		total = lg.originWp[o*w+s.perm[0]]
		if s.cut(total, best) {
			return
		}
		for i := 1; i < w; i++ {
			total += lg.wpWp[s.perm[i-1]*w+s.perm[i]]
			if s.cut(total, best) {
				return
			}
		}
		total += lg.wpDest[s.perm[w-1]*lg.d+d]
	}
	if math.IsInf(total, 1) || !best.better(total) {
		return
	}

	best.found = true
	best.cost = total
	best.origin = o
	best.dest = d
	best.order = append(best.order[:0], s.perm...)
}

// cut reports whether a partial sum can be abandoned.
func (s *permSearch) cut(partial float64, best *incumbent) bool {
	if math.IsInf(partial, 1) {
		return true
	}
	return s.prune && best.found && partial >= best.cost
}

// nextPermutation rearranges p into its lexicographic successor and
// reports false, leaving p untouched, when p is the last permutation.
// The empty permutation has no successor.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
