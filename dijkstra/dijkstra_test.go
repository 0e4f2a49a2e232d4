// Package dijkstra_test contains unit tests for the grid Dijkstra engine:
// validation, table invariants, wall handling, deterministic ties,
// MaxCost and cancellation.
package dijkstra_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/dijkstra"
	"github.com/katalvlaran/gridroute/gridmap"
)

// mustMap builds a Map from cells or fails the test.
func mustMap(t testing.TB, cells [][]gridmap.Cell) *gridmap.Map {
	t.Helper()
	m, err := gridmap.New(cells)
	require.NoError(t, err)
	return m
}

// randomMap returns a seeded rows×cols map with costs in [1,9] and ~20% walls.
func randomMap(t testing.TB, seed int64, rows, cols int) *gridmap.Map {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	cells := gridmap.Uniform(rows, cols, 1)
	for r := range cells {
		for c := range cells[r] {
			if rng.Intn(5) == 0 {
				cells[r][c] = gridmap.Wall
				continue
			}
			cells[r][c].Cost = float64(1 + rng.Intn(9))
		}
	}
	cells[0][0] = gridmap.Cell{Cost: 1}
	return mustMap(t, cells)
}

// rawGrid is a Grid implementation that skips gridmap validation.
type rawGrid [][]gridmap.Cell

func (g rawGrid) Size() (int, int)             { return len(g), len(g[0]) }
func (g rawGrid) CellAt(r, c int) gridmap.Cell { return g[r][c] }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestCompute_NilGrid(t *testing.T) {
	_, err := dijkstra.Compute(nil, gridmap.At(0, 0))
	require.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestCompute_InvalidSource(t *testing.T) {
	cells := gridmap.Uniform(2, 2, 1)
	cells[1][1] = gridmap.Wall
	m := mustMap(t, cells)

	for _, src := range []gridmap.Coordinate{gridmap.At(-1, 0), gridmap.At(0, 2), gridmap.At(2, 0), gridmap.At(1, 1)} {
		_, err := dijkstra.Compute(m, src)
		require.ErrorIs(t, err, dijkstra.ErrInvalidSource, "source %v", src)
	}
}

func TestCompute_NegativeCostDetected(t *testing.T) {
	g := rawGrid{{{Cost: 1}, {Cost: -2}}}
	_, err := dijkstra.Compute(g, gridmap.At(0, 0))
	require.ErrorIs(t, err, dijkstra.ErrNegativeCost)
}

func TestWithMaxCost_PanicsOnNegative(t *testing.T) {
	require.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.WithMaxCost(-1)
	})
	require.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.WithMaxCost(math.NaN())
	})
	require.NotPanics(t, func() { dijkstra.WithMaxCost(0) })
}

// ------------------------------------------------------------------------
// 2. Table invariants
// ------------------------------------------------------------------------

// TestCompute_SourceEntry checks cost(source)==0 and no predecessor.
func TestCompute_SourceEntry(t *testing.T) {
	m := mustMap(t, gridmap.Uniform(3, 3, 5))
	tbl, err := dijkstra.Compute(m, gridmap.At(1, 1))
	require.NoError(t, err)

	cost, ok := tbl.Cost(gridmap.At(1, 1))
	require.True(t, ok)
	require.Zero(t, cost)
	_, ok = tbl.Predecessor(gridmap.At(1, 1))
	require.False(t, ok)
	require.Equal(t, gridmap.At(1, 1), tbl.Source())

	path, err := tbl.PathTo(gridmap.At(1, 1))
	require.NoError(t, err)
	require.Equal(t, []gridmap.Coordinate{gridmap.At(1, 1)}, path)
}

// TestCompute_EnteredCellCost verifies edge weights come from the entered cell.
func TestCompute_EnteredCellCost(t *testing.T) {
	// 1×3 strip: 9 | 2 | 4. From (0,0), reaching (0,2) costs 2+4 (source is free).
	m := mustMap(t, [][]gridmap.Cell{{{Cost: 9}, {Cost: 2}, {Cost: 4}}})
	tbl, err := dijkstra.Compute(m, gridmap.At(0, 0))
	require.NoError(t, err)

	cost, ok := tbl.Cost(gridmap.At(0, 2))
	require.True(t, ok)
	require.Equal(t, 6.0, cost)

	// Reverse direction charges the 9 of the entered origin cell.
	back, err := dijkstra.Compute(m, gridmap.At(0, 2))
	require.NoError(t, err)
	cost, _ = back.Cost(gridmap.At(0, 0))
	require.Equal(t, 11.0, cost)
}

// TestCompute_PredecessorChainInvariant checks cost(c) == cost(prev) + terrain(c)
// and that every predecessor is 4-adjacent, on seeded random maps.
func TestCompute_PredecessorChainInvariant(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		m := randomMap(t, seed, 15, 20)
		tbl, err := dijkstra.Compute(m, gridmap.At(0, 0))
		require.NoError(t, err)

		count := 0
		tbl.Each(func(c gridmap.Coordinate, cost float64) bool {
			count++
			require.False(t, m.CellAt(c.Row, c.Col).Impassable, "impassable %v in table", c)
			prev, ok := tbl.Predecessor(c)
			if c == tbl.Source() {
				require.False(t, ok)
				return true
			}
			require.True(t, ok, "missing predecessor for %v", c)
			require.True(t, c.Adjacent(prev))
			pc, ok := tbl.Cost(prev)
			require.True(t, ok)
			require.InDelta(t, pc+m.CellAt(c.Row, c.Col).Cost, cost, 1e-9)
			return true
		})
		require.Equal(t, tbl.Len(), count)
	}
}

// TestCompute_MatchesBellmanFord compares against a naive relaxation fixpoint.
func TestCompute_MatchesBellmanFord(t *testing.T) {
	m := randomMap(t, 42, 12, 12)
	rows, cols := m.Size()
	tbl, err := dijkstra.Compute(m, gridmap.At(0, 0))
	require.NoError(t, err)

	want := make([]float64, rows*cols)
	for i := range want {
		want[i] = math.Inf(1)
	}
	want[0] = 0
	for changed := true; changed; {
		changed = false
		for i := range want {
			if math.IsInf(want[i], 1) {
				continue
			}
			for _, n := range m.Neighbors(m.Coordinate(i), nil) {
				cell := m.CellAt(n.Row, n.Col)
				if cell.Impassable {
					continue
				}
				if d := want[i] + cell.Cost; d < want[m.Index(n)] {
					want[m.Index(n)] = d
					changed = true
				}
			}
		}
	}

	for i, w := range want {
		got, ok := tbl.Cost(m.Coordinate(i))
		if math.IsInf(w, 1) {
			require.False(t, ok, "cell %v should be absent", m.Coordinate(i))
			continue
		}
		require.True(t, ok)
		require.Equal(t, w, got, "cell %v", m.Coordinate(i))
	}
}

// ------------------------------------------------------------------------
// 3. Walls and reachability
// ------------------------------------------------------------------------

// TestCompute_WalledOffCellsAbsent checks isolated cells are not in the table.
func TestCompute_WalledOffCellsAbsent(t *testing.T) {
	//  S # .
	//  . # .
	//  . # .
	cells := gridmap.Uniform(3, 3, 1)
	for r := 0; r < 3; r++ {
		cells[r][1] = gridmap.Wall
	}
	m := mustMap(t, cells)
	tbl, err := dijkstra.Compute(m, gridmap.At(0, 0))
	require.NoError(t, err)

	require.Equal(t, 3, tbl.Len())
	for r := 0; r < 3; r++ {
		require.False(t, tbl.Reached(gridmap.At(r, 1)), "wall (%d,1)", r)
		require.False(t, tbl.Reached(gridmap.At(r, 2)), "island (%d,2)", r)
		_, ok := tbl.Cost(gridmap.At(r, 2))
		require.False(t, ok)
	}
	_, err = tbl.PathTo(gridmap.At(2, 2))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
	require.False(t, tbl.Reached(gridmap.At(5, 5)))
}

// TestCompute_RoutesAroundWalls mirrors routing around (0,1) and (1,1).
func TestCompute_RoutesAroundWalls(t *testing.T) {
	cells := gridmap.Uniform(3, 3, 1)
	cells[0][1] = gridmap.Wall
	cells[1][1] = gridmap.Wall
	m := mustMap(t, cells)
	tbl, err := dijkstra.Compute(m, gridmap.At(0, 0))
	require.NoError(t, err)

	path, err := tbl.PathTo(gridmap.At(2, 2))
	require.NoError(t, err)
	require.Equal(t, []gridmap.Coordinate{gridmap.At(0, 0), gridmap.At(1, 0), gridmap.At(2, 0), gridmap.At(2, 1), gridmap.At(2, 2)}, path)
	cost, _ := tbl.Cost(gridmap.At(2, 2))
	require.Equal(t, 4.0, cost)
}

// ------------------------------------------------------------------------
// 4. Determinism, MaxCost, cancellation
// ------------------------------------------------------------------------

// TestCompute_DeterministicTies verifies N,E,S,W + FIFO tie-breaking.
func TestCompute_DeterministicTies(t *testing.T) {
	m := mustMap(t, gridmap.Uniform(3, 3, 1))
	tbl, err := dijkstra.Compute(m, gridmap.At(0, 0))
	require.NoError(t, err)

	// (0,1) is discovered before (1,0) (east before south), so (1,1) is
	// first reached through (0,1) and keeps it on the equal-cost tie.
	prev, ok := tbl.Predecessor(gridmap.At(1, 1))
	require.True(t, ok)
	require.Equal(t, gridmap.At(0, 1), prev)

	for i := 0; i < 5; i++ {
		again, err := dijkstra.Compute(m, gridmap.At(0, 0))
		require.NoError(t, err)
		p1, _ := tbl.PathTo(gridmap.At(2, 2))
		p2, _ := again.PathTo(gridmap.At(2, 2))
		require.Equal(t, p1, p2)
	}
}

// TestCompute_MaxCost leaves out cells beyond the budget.
func TestCompute_MaxCost(t *testing.T) {
	m := mustMap(t, gridmap.Uniform(1, 6, 1))
	tbl, err := dijkstra.Compute(m, gridmap.At(0, 0), dijkstra.WithMaxCost(3))
	require.NoError(t, err)

	require.Equal(t, 4, tbl.Len())
	require.True(t, tbl.Reached(gridmap.At(0, 3)))
	require.False(t, tbl.Reached(gridmap.At(0, 4)))
}

// TestCompute_Cancelled returns the context error.
func TestCompute_Cancelled(t *testing.T) {
	m := mustMap(t, gridmap.Uniform(64, 64, 1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dijkstra.Compute(m, gridmap.At(0, 0), dijkstra.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
