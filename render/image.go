package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/gridroute/gridmap"
)

// Image rasterizes m and path at opts.Scale pixels per cell.
func Image(m Map, path []gridmap.Coordinate, opts ...Option) (image.Image, error) {
	dc, err := draw(m, path, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// PNG writes the rasterized map to filename.
func PNG(m Map, path []gridmap.Coordinate, filename string, opts ...Option) error {
	dc, err := draw(m, path, opts)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("render: save %s: %w", filename, err)
	}
	return nil
}

// EncodePNG writes the rasterized map to w as PNG.
func EncodePNG(w io.Writer, m Map, path []gridmap.Coordinate, opts ...Option) error {
	dc, err := draw(m, path, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// draw paints terrain, then the route, then terminal markers.
func draw(m Map, path []gridmap.Coordinate, opts []Option) (*gg.Context, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Scale < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadScale, cfg.Scale)
	}

	rows, cols := m.Size()
	s := float64(cfg.Scale)
	dc := gg.NewContext(cols*cfg.Scale, rows*cfg.Scale)
	dc.SetColor(color.White)
	dc.Clear()

	// --- terrain ---
	lo, hi := costRange(m, rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := m.CellAt(r, c)
			if cell.Impassable {
				dc.SetColor(wallColor)
			} else {
				dc.SetColor(shade(cell.Cost, lo, hi))
			}
			dc.DrawRectangle(float64(c)*s, float64(r)*s, s, s)
			dc.Fill()
		}
	}

	// --- route ---
	center := func(p gridmap.Coordinate) (float64, float64) {
		return float64(p.Col)*s + s/2, float64(p.Row)*s + s/2
	}
	if len(path) > 1 {
		dc.SetColor(cfg.Path)
		dc.SetLineWidth(math.Max(1, s/4))
		dc.MoveTo(center(path[0]))
		for _, p := range path[1:] {
			dc.LineTo(center(p))
		}
		dc.Stroke()
	}

	// --- terminals ---
	markers := []struct {
		cs  []gridmap.Coordinate
		col color.Color
	}{
		{m.Waypoints(), waypointColor},
		{m.Destinations(), destinationColor},
		{m.Origins(), originColor},
	}
	for _, mk := range markers {
		dc.SetColor(mk.col)
		for _, p := range mk.cs {
			x, y := center(p)
			dc.DrawCircle(x, y, s/3)
			dc.Fill()
		}
	}

	return dc, nil
}

// costRange returns the smallest and largest passable terrain cost.
func costRange(m Map, rows, cols int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := m.CellAt(r, c)
			if cell.Impassable {
				continue
			}
			lo = math.Min(lo, cell.Cost)
			hi = math.Max(hi, cell.Cost)
		}
	}
	return lo, hi
}

// shade maps cost onto a light-to-dark gray: the cheapest terrain is
// near-white, the most expensive mid-gray. A flat map is all near-white.
func shade(cost, lo, hi float64) color.Color {
	t := 0.0
	if hi > lo {
		t = (cost - lo) / (hi - lo)
	}
	v := uint8(240 - t*140)
	return color.RGBA{R: v, G: v, B: v, A: 255}
}
