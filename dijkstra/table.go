package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/gridroute/gridmap"
)

func (t *Table) index(c gridmap.Coordinate) int {
	return c.Row*t.cols + c.Col
}

func (t *Table) coordinate(idx int) gridmap.Coordinate {
	return gridmap.Coordinate{Row: idx / t.cols, Col: idx % t.cols}
}

// lookup returns the finalized entry for c, if any.
func (t *Table) lookup(c gridmap.Coordinate) (entry, bool) {
	if c.Row < 0 || c.Row >= t.rows || c.Col < 0 || c.Col >= t.cols {
		return entry{}, false
	}
	e := t.cells[t.index(c)]
	return e, e.reached
}

// Source returns the coordinate the table was computed from.
func (t *Table) Source() gridmap.Coordinate { return t.source }

// Len returns the number of finalized (reachable) coordinates,
// the source included.
func (t *Table) Len() int { return t.finalized }

// Reached reports whether c has an entry in the table.
func (t *Table) Reached(c gridmap.Coordinate) bool {
	_, ok := t.lookup(c)
	return ok
}

// Cost returns the minimum cumulative cost from Source to c.
// ok is false when c was not reached.
func (t *Table) Cost(c gridmap.Coordinate) (cost float64, ok bool) {
	e, ok := t.lookup(c)
	if !ok {
		return 0, false
	}
	return e.cost, true
}

// Predecessor returns the cell preceding c on the recorded cheapest path.
// ok is false for the source itself and for unreached cells.
func (t *Table) Predecessor(c gridmap.Coordinate) (prev gridmap.Coordinate, ok bool) {
	e, ok := t.lookup(c)
	if !ok || e.prev < 0 {
		return gridmap.Coordinate{}, false
	}
	return t.coordinate(e.prev), true
}

// PathTo reconstructs the cheapest path from Source to c by walking
// predecessors backwards, and returns it in forward order, both endpoints
// included. Returns ErrUnreachable if c has no entry.
// Complexity: O(path length).
func (t *Table) PathTo(c gridmap.Coordinate) ([]gridmap.Coordinate, error) {
	e, ok := t.lookup(c)
	if !ok {
		return nil, fmt.Errorf("%w: %v from %v", ErrUnreachable, c, t.source)
	}

	var path []gridmap.Coordinate
	at := t.index(c)
	for {
		path = append(path, t.coordinate(at))
		if e.prev < 0 {
			break
		}
		at = e.prev
		e = t.cells[at]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Each calls fn for every reached coordinate in row-major order.
// Iteration stops early when fn returns false.
func (t *Table) Each(fn func(c gridmap.Coordinate, cost float64) bool) {
	for i, e := range t.cells {
		if !e.reached {
			continue
		}
		if !fn(t.coordinate(i), e.cost) {
			return
		}
	}
}
