package route_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridmap"
)

// pathCost sums entered-cell terrain costs along path (the first cell is free).
func pathCost(m *gridmap.Map, path []gridmap.Coordinate) float64 {
	total := 0.0
	for _, c := range path[1:] {
		total += m.CellAt(c.Row, c.Col).Cost
	}
	return total
}

// requireWalk asserts path is a 4-connected walk over passable cells with no
// repeated cell at consecutive positions.
func requireWalk(t testing.TB, m *gridmap.Map, path []gridmap.Coordinate) {
	t.Helper()
	require.NotEmpty(t, path)
	for i, c := range path {
		require.True(t, m.Passable(c), "step %d %v not passable", i, c)
		if i > 0 {
			require.True(t, path[i-1].Adjacent(c), "step %d: %v → %v not adjacent", i, path[i-1], c)
		}
	}
}

// randomScenario builds a seeded map with costs in [1,9], ~15% walls and
// distinct passable origins, waypoints and destinations.
func randomScenario(t testing.TB, seed int64, rows, cols, nOrig, nWp, nDest int) *gridmap.Map {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	cells := gridmap.Uniform(rows, cols, 1)
	var free []gridmap.Coordinate
	for r := range cells {
		for c := range cells[r] {
			if rng.Intn(100) < 15 {
				cells[r][c] = gridmap.Wall
				continue
			}
			cells[r][c].Cost = float64(1 + rng.Intn(9))
			free = append(free, gridmap.At(r, c))
		}
	}
	need := nOrig + nWp + nDest
	require.GreaterOrEqual(t, len(free), need)
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	m, err := gridmap.New(cells,
		gridmap.WithOrigins(free[:nOrig]...),
		gridmap.WithWaypoints(free[nOrig:nOrig+nWp]...),
		gridmap.WithDestinations(free[nOrig+nWp:need]...),
	)
	require.NoError(t, err)
	return m
}

// outOfBoundsMap wraps a Map and reports an origin outside the grid,
// something gridmap.New itself would refuse to build.
type outOfBoundsMap struct {
	*gridmap.Map
}

func (outOfBoundsMap) Origins() []gridmap.Coordinate {
	return []gridmap.Coordinate{gridmap.At(7, 7)}
}

// droppableMap wraps a Map whose destinations can be withdrawn between calls.
type droppableMap struct {
	*gridmap.Map
	noDestinations bool
}

func (m *droppableMap) Destinations() []gridmap.Coordinate {
	if m.noDestinations {
		return nil
	}
	return m.Map.Destinations()
}
