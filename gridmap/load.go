package gridmap

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileCost is one sparse cost override in a map document.
type fileCost struct {
	Row  int     `yaml:"row"`
	Col  int     `yaml:"col"`
	Cost float64 `yaml:"cost"`
}

// mapFile mirrors the YAML map document:
//
//	rows: 3
//	cols: 3
//	default_cost: 1
//	costs: [{row: 1, col: 1, cost: 5}]
//	impassable: [[0, 1], [1, 1]]
//	origins: [[0, 0]]
//	destinations: [[2, 2]]
//	waypoints: [[2, 0]]
//
// Instead of rows/cols, terrain may list full rows as strings: digits are
// costs, '.' is default_cost and '#' is impassable.
type mapFile struct {
	Rows         int        `yaml:"rows"`
	Cols         int        `yaml:"cols"`
	DefaultCost  *float64   `yaml:"default_cost"`
	Terrain      []string   `yaml:"terrain"`
	Costs        []fileCost `yaml:"costs"`
	Impassable   [][]int    `yaml:"impassable"`
	Origins      [][]int    `yaml:"origins"`
	Destinations [][]int    `yaml:"destinations"`
	Waypoints    [][]int    `yaml:"waypoints"`
}

// LoadFile opens path and decodes it with Load.
func LoadFile(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: open %q: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load decodes a YAML map document and builds a Map from it.
// Structural problems in the document wrap ErrInvalidMapFile; grid
// validation errors from New are returned as-is.
func Load(r io.Reader) (*Map, error) {
	var doc mapFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMapFile, err)
	}

	def := 1.0
	if doc.DefaultCost != nil {
		def = *doc.DefaultCost
	}

	cells, err := doc.grid(def)
	if err != nil {
		return nil, err
	}

	for _, oc := range doc.Costs {
		if oc.Row < 0 || oc.Row >= len(cells) || oc.Col < 0 || oc.Col >= len(cells[0]) {
			return nil, fmt.Errorf("%w: cost override (%d,%d) out of bounds", ErrInvalidMapFile, oc.Row, oc.Col)
		}
		cells[oc.Row][oc.Col].Cost = oc.Cost
	}

	walls, err := pairs("impassable", doc.Impassable)
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		if w.Row < 0 || w.Row >= len(cells) || w.Col < 0 || w.Col >= len(cells[0]) {
			return nil, fmt.Errorf("%w: impassable %v out of bounds", ErrInvalidMapFile, w)
		}
		cells[w.Row][w.Col].Impassable = true
	}

	origins, err := pairs("origins", doc.Origins)
	if err != nil {
		return nil, err
	}
	dests, err := pairs("destinations", doc.Destinations)
	if err != nil {
		return nil, err
	}
	wps, err := pairs("waypoints", doc.Waypoints)
	if err != nil {
		return nil, err
	}

	return New(cells,
		WithOrigins(origins...),
		WithDestinations(dests...),
		WithWaypoints(wps...),
	)
}

// grid builds the base cell grid from either terrain rows or rows/cols.
func (doc *mapFile) grid(def float64) ([][]Cell, error) {
	if len(doc.Terrain) == 0 {
		if doc.Rows <= 0 || doc.Cols <= 0 {
			return nil, fmt.Errorf("%w: rows and cols must be positive (got %dx%d)", ErrInvalidMapFile, doc.Rows, doc.Cols)
		}
		return Uniform(doc.Rows, doc.Cols, def), nil
	}

	if doc.Rows != 0 && doc.Rows != len(doc.Terrain) {
		return nil, fmt.Errorf("%w: rows=%d but terrain has %d rows", ErrInvalidMapFile, doc.Rows, len(doc.Terrain))
	}
	width := len(doc.Terrain[0])
	cells := make([][]Cell, len(doc.Terrain))
	for r, line := range doc.Terrain {
		if doc.Cols != 0 && doc.Cols != len(line) {
			return nil, fmt.Errorf("%w: cols=%d but terrain row %d has %d cells", ErrInvalidMapFile, doc.Cols, r, len(line))
		}
		if len(line) != width {
			return nil, fmt.Errorf("%w: %w: terrain row %d has %d cells, row 0 has %d", ErrInvalidMapFile, ErrNonRectangular, r, len(line), width)
		}
		cells[r] = make([]Cell, len(line))
		for c, ch := range []byte(line) {
			switch {
			case ch == '#':
				cells[r][c] = Wall
			case ch == '.':
				cells[r][c] = Cell{Cost: def}
			case ch >= '0' && ch <= '9':
				cells[r][c] = Cell{Cost: float64(ch - '0')}
			default:
				return nil, fmt.Errorf("%w: unknown terrain symbol %q at (%d,%d)", ErrInvalidMapFile, ch, r, c)
			}
		}
	}

	return cells, nil
}

// pairs converts [[r, c], ...] into Coordinates.
func pairs(field string, raw [][]int) ([]Coordinate, error) {
	out := make([]Coordinate, 0, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: %s[%d] must be [row, col], got %v", ErrInvalidMapFile, field, i, p)
		}
		out = append(out, At(p[0], p[1]))
	}

	return out, nil
}
