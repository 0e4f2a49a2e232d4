package render_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridroute/gridmap"
	"github.com/katalvlaran/gridroute/render"
)

// sample is the 3×4 map
//
//	O # . .
//	. # 9 .
//	W . . D
func sample(t *testing.T) *gridmap.Map {
	t.Helper()
	cells := gridmap.Uniform(3, 4, 1)
	cells[0][1] = gridmap.Wall
	cells[1][1] = gridmap.Wall
	cells[1][2].Cost = 9
	m, err := gridmap.New(cells,
		gridmap.WithOrigins(gridmap.At(0, 0)),
		gridmap.WithWaypoints(gridmap.At(2, 0)),
		gridmap.WithDestinations(gridmap.At(2, 3)),
	)
	require.NoError(t, err)
	return m
}

var samplePath = []gridmap.Coordinate{gridmap.At(0, 0), gridmap.At(1, 0), gridmap.At(2, 0), gridmap.At(2, 1), gridmap.At(2, 2), gridmap.At(2, 3)}

func TestASCII(t *testing.T) {
	m := sample(t)
	require.Equal(t, "O#..\n.#..\nW..D\n", render.ASCII(m, nil))
	require.Equal(t, "O#..\n*#..\nW**D\n", render.ASCII(m, samplePath))

	// Off-grid coordinates are ignored.
	require.Equal(t, "O#..\n.#..\nW..D\n", render.ASCII(m, []gridmap.Coordinate{gridmap.At(-1, 0), gridmap.At(9, 9)}))
}

func TestImage(t *testing.T) {
	m := sample(t)
	img, err := render.Image(m, samplePath, render.WithScale(10))
	require.NoError(t, err)

	b := img.Bounds()
	require.Equal(t, 40, b.Dx())
	require.Equal(t, 30, b.Dy())

	// Wall at (1,1) is black.
	r, g, bl, a := img.At(15, 15).RGBA()
	require.Equal(t, []uint32{0, 0, 0, 0xffff}, []uint32{r, g, bl, a})

	// The expensive cell (1,2) is darker than the cheap cell (0,3).
	dr, _, _, _ := img.At(25, 15).RGBA()
	cr, _, _, _ := img.At(35, 5).RGBA()
	require.Less(t, dr, cr)
}

func TestBadScale(t *testing.T) {
	_, err := render.Image(sample(t), nil, render.WithScale(0))
	require.ErrorIs(t, err, render.ErrBadScale)
}

func TestPNG(t *testing.T) {
	m := sample(t)
	file := filepath.Join(t.TempDir(), "route.png")
	require.NoError(t, render.PNG(m, samplePath, file, render.WithScale(8)))

	f, err := os.Open(file)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())

	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, m, samplePath, render.WithScale(8)))
	_, err = png.Decode(&buf)
	require.NoError(t, err)
}
