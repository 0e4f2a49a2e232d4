package render

import (
	"errors"
	"image/color"

	"github.com/katalvlaran/gridroute/gridmap"
)

// ErrBadScale indicates a non-positive pixel scale.
var ErrBadScale = errors.New("render: scale must be at least 1")

// Map is the read-only view render needs. *gridmap.Map satisfies it.
type Map interface {
	Size() (rows, cols int)
	CellAt(r, c int) gridmap.Cell
	Origins() []gridmap.Coordinate
	Destinations() []gridmap.Coordinate
	Waypoints() []gridmap.Coordinate
}

// ASCII symbols.
const (
	SymOrigin      = 'O'
	SymDestination = 'D'
	SymWaypoint    = 'W'
	SymPath        = '*'
	SymWall        = '#'
	SymOpen        = '.'
)

// Options configures raster output.
//
// Scale – pixels per cell side (default 24).
// Path  – stroke color of the route.
type Options struct {
	Scale int
	Path  color.Color
}

// Option represents a functional option for raster output.
type Option func(*Options)

// DefaultOptions returns a 24 px scale and a red route.
func DefaultOptions() Options {
	return Options{
		Scale: 24,
		Path:  color.RGBA{R: 220, G: 30, B: 30, A: 255},
	}
}

// WithScale sets the pixels per cell side.
func WithScale(px int) Option {
	return func(o *Options) {
		o.Scale = px
	}
}

// WithPathColor sets the route stroke color.
func WithPathColor(c color.Color) Option {
	return func(o *Options) {
		o.Path = c
	}
}

// Terminal marker colors.
var (
	wallColor        = color.Black
	originColor      = color.RGBA{G: 170, A: 255}
	destinationColor = color.RGBA{B: 220, A: 255}
	waypointColor    = color.RGBA{R: 230, G: 160, A: 255}
)
