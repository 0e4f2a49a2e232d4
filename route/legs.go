package route

import (
	"math"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridmap"
)

// legs is a dense prefetch of every leg cost a chain can use, so the search
// never touches the cost tables. Unreachable legs are +Inf.
//
// Layout (row-major):
//
//	originWp[o*w+j]   origin o   → waypoint j
//	originDest[o*d+k] origin o   → destination k
//	wpWp[i*w+j]       waypoint i → waypoint j
//	wpDest[j*d+k]     waypoint j → destination k
type legs struct {
	o, w, d    int
	originWp   []float64
	originDest []float64
	wpWp       []float64
	wpDest     []float64
}

// newLegs fills the leg matrices from tables keyed by source coordinate.
// Complexity: O((|O|+|W|)·(|W|+|D|)).
func newLegs(tables map[gridmap.Coordinate]*dijkstra.Table, origins, wps, dests []gridmap.Coordinate) *legs {
	lg := &legs{
		o:          len(origins),
		w:          len(wps),
		d:          len(dests),
		originWp:   make([]float64, len(origins)*len(wps)),
		originDest: make([]float64, len(origins)*len(dests)),
		wpWp:       make([]float64, len(wps)*len(wps)),
		wpDest:     make([]float64, len(wps)*len(dests)),
	}
	for i, src := range origins {
		t := tables[src]
		for j, wp := range wps {
			lg.originWp[i*lg.w+j] = legCost(t, wp)
		}
		for k, dst := range dests {
			lg.originDest[i*lg.d+k] = legCost(t, dst)
		}
	}
	for i, src := range wps {
		t := tables[src]
		for j, wp := range wps {
			lg.wpWp[i*lg.w+j] = legCost(t, wp)
		}
		for k, dst := range dests {
			lg.wpDest[i*lg.d+k] = legCost(t, dst)
		}
	}

	return lg
}

// legCost returns the table cost of target, or +Inf when absent.
func legCost(t *dijkstra.Table, target gridmap.Coordinate) float64 {
	c, ok := t.Cost(target)
	if !ok {
		return math.Inf(1)
	}
	return c
}

// incumbent is the best chain found so far, by registry indices.
type incumbent struct {
	found  bool
	cost   float64
	origin int
	dest   int
	order  []int // waypoint indices in visiting order
}

// better reports whether cost strictly improves on the incumbent.
func (b *incumbent) better(cost float64) bool {
	return !b.found || cost < b.cost
}
