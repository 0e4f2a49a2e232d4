package render

import (
	"strings"

	"github.com/katalvlaran/gridroute/gridmap"
)

// ASCII renders m with path overlaid, one '\n'-terminated line per row.
// Path coordinates outside the grid are ignored.
func ASCII(m Map, path []gridmap.Coordinate) string {
	rows, cols := m.Size()
	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = make([]byte, cols)
		for c := range grid[r] {
			if m.CellAt(r, c).Impassable {
				grid[r][c] = SymWall
			} else {
				grid[r][c] = SymOpen
			}
		}
	}

	mark := func(cs []gridmap.Coordinate, sym byte) {
		for _, p := range cs {
			if p.Row >= 0 && p.Row < rows && p.Col >= 0 && p.Col < cols {
				grid[p.Row][p.Col] = sym
			}
		}
	}
	// Lowest precedence first; later marks win.
	mark(path, SymPath)
	mark(m.Waypoints(), SymWaypoint)
	mark(m.Destinations(), SymDestination)
	mark(m.Origins(), SymOrigin)

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))
	for _, line := range grid {
		sb.Write(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}
