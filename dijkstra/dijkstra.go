// Package dijkstra implements Dijkstra's shortest-path algorithm over a
// 4-connected terrain grid.
//
// Notes on implementation choices:
//
//   - Table storage is a dense row-major slice instead of a map: lookups are
//     O(1) without hashing and a whole table is one allocation.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once their cell is finalized.
//   - Heap entries carry an insertion sequence so equal costs pop in FIFO
//     order and results are reproducible.
//   - Terrain costs are validated lazily, when a cell is first entered.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/gridroute/gridmap"
)

// Compute runs Dijkstra from source over g and returns the cost table.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. source must be in bounds and passable (ErrInvalidSource).
//  3. Every entered cell must have a non-negative cost (ErrNegativeCost).
//
// Options customization:
//
//   - WithContext(ctx): abort with ctx.Err() when ctx is done.
//   - WithMaxCost(x):   cells costing more than x are left out of the table.
//
// Complexity:
//
//   - Time:  O(C log C), C = rows×cols
//   - Space: O(C)
func Compute(g Grid, source gridmap.Coordinate, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Ctx == nil {
		cfg.Ctx = context.Background()
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	rows, cols := g.Size()
	if source.Row < 0 || source.Row >= rows || source.Col < 0 || source.Col >= cols {
		return nil, fmt.Errorf("%w: %v outside %dx%d grid", ErrInvalidSource, source, rows, cols)
	}
	if g.CellAt(source.Row, source.Col).Impassable {
		return nil, fmt.Errorf("%w: %v is impassable", ErrInvalidSource, source)
	}

	t := &Table{
		source: source,
		rows:   rows,
		cols:   cols,
		cells:  make([]entry, rows*cols),
	}
	for i := range t.cells {
		t.cells[i] = entry{cost: math.Inf(1), prev: -1}
	}

	r := &runner{
		g:       g,
		options: cfg,
		table:   t,
		pq:      make(frontier, 0, rows+cols),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return t, nil
}

// runner holds the mutable state for a single Compute execution.
type runner struct {
	g       Grid                 // terrain; read-only
	options Options              // Ctx and MaxCost
	table   *Table               // tentative costs, predecessors and finalized flags
	pq      frontier             // min-heap of discovered cells
	seq     uint64               // insertion counter for FIFO tie-breaking
	nbuf    []gridmap.Coordinate // neighbor scratch buffer
}

// init seeds the frontier with the source at cost 0.
func (r *runner) init() {
	src := r.table.index(r.table.source)
	r.table.cells[src].cost = 0
	heap.Init(&r.pq)
	r.push(src, 0)
}

// push adds a frontier entry stamped with the next sequence number.
func (r *runner) push(idx int, cost float64) {
	heap.Push(&r.pq, frontierItem{idx: idx, cost: cost, seq: r.seq})
	r.seq++
}

// process is the core loop: extract the cheapest frontier cell, finalize
// it and relax its neighbors, until the frontier is empty or MaxCost is hit.
func (r *runner) process() error {
	t := r.table
	if err := r.options.Ctx.Err(); err != nil {
		return err
	}
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(frontierItem)
		e := &t.cells[item.idx]

		// Stale entry: either finalized already or superseded by a cheaper push.
		if e.reached || item.cost > e.cost {
			continue
		}
		if item.cost > r.options.MaxCost {
			break
		}

		e.reached = true
		t.finalized++
		if t.finalized%cancelEvery == 0 {
			if err := r.options.Ctx.Err(); err != nil {
				return err
			}
		}

		if err := r.relax(item.idx); err != nil {
			return err
		}
	}

	return nil
}

// relax examines the up-to-four neighbors of the finalized cell u.
// A neighbor is skipped when impassable or already finalized; otherwise its
// tentative cost becomes cost(u) + terrain(neighbor) if that is strictly
// cheaper than what is recorded.
func (r *runner) relax(u int) error {
	t := r.table
	base := t.cells[u].cost
	r.nbuf = gridmap.AppendNeighbors(r.nbuf[:0], t.coordinate(u), t.rows, t.cols)

	for _, n := range r.nbuf {
		v := t.index(n)
		if t.cells[v].reached {
			continue
		}
		cell := r.g.CellAt(n.Row, n.Col)
		if cell.Impassable {
			continue
		}
		if cell.Cost < 0 || math.IsNaN(cell.Cost) {
			return fmt.Errorf("%w: cell %v cost=%v", ErrNegativeCost, n, cell.Cost)
		}

		newCost := base + cell.Cost
		// Strict improvement only: equal costs keep the earlier predecessor.
		if newCost >= t.cells[v].cost {
			continue
		}
		t.cells[v].cost = newCost
		t.cells[v].prev = u
		r.push(v, newCost)
	}

	return nil
}

// frontierItem is a discovered cell awaiting finalization.
type frontierItem struct {
	idx  int     // row-major cell index
	cost float64 // tentative cost from the source
	seq  uint64  // insertion order, breaks cost ties
}

// frontier is a min-heap of frontierItem ordered by (cost, seq).
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by cost, then by insertion sequence.
func (pq frontier) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
