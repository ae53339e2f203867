// Package sprite loads sprite sheets: a single image divided into a grid of
// equally sized frames addressed by column and row.
package sprite

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/shapes"
)

// Sheet is an image split into columns x rows frames.
type Sheet struct {
	image   *ebiten.Image
	columns int
	rows    int
	frameW  int
	frameH  int
}

// New slices img into a columns x rows grid. The image size must divide
// evenly into the grid.
func New(img *ebiten.Image, columns, rows int) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("sprite: nil image")
	}
	if columns < 1 || rows < 1 {
		return nil, fmt.Errorf("sprite: invalid grid %dx%d", columns, rows)
	}
	b := img.Bounds()
	if b.Dx()%columns != 0 || b.Dy()%rows != 0 {
		return nil, fmt.Errorf("sprite: %dx%d image does not divide into %dx%d frames",
			b.Dx(), b.Dy(), columns, rows)
	}
	return &Sheet{
		image:   img,
		columns: columns,
		rows:    rows,
		frameW:  b.Dx() / columns,
		frameH:  b.Dy() / rows,
	}, nil
}

func (s *Sheet) Image() *ebiten.Image { return s.image }
func (s *Sheet) Columns() int         { return s.columns }
func (s *Sheet) Rows() int            { return s.rows }

// FrameSize returns the size of a single frame in pixels.
func (s *Sheet) FrameSize() shapes.Size {
	return shapes.Sz(float64(s.frameW), float64(s.frameH))
}

// FrameAt returns the source rectangle of the frame at (col, row). Indices
// outside the grid are clamped to the nearest frame.
func (s *Sheet) FrameAt(col, row int) image.Rectangle {
	col = clamp(col, 0, s.columns-1)
	row = clamp(row, 0, s.rows-1)
	origin := s.image.Bounds().Min
	x := origin.X + col*s.frameW
	y := origin.Y + row*s.frameH
	return image.Rect(x, y, x+s.frameW, y+s.frameH)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
