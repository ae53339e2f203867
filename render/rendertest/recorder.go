// Package rendertest provides a render.Context and render.Target that record
// draw calls instead of rasterising them, for use in tests.
package rendertest

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

// Op names a recorded call.
type Op string

const (
	OpClear         Op = "clear"
	OpDraw          Op = "draw"
	OpFillRect      Op = "fill-rect"
	OpFillPolygon   Op = "fill-polygon"
	OpStrokePolygon Op = "stroke-polygon"
	OpText          Op = "text"
	OpImage         Op = "image"
)

// Call is one recorded drawing call.
type Call struct {
	Op     Op
	Rect   shapes.Rect
	Points []shapes.Point
	Text   string
	Size   float64
	Pos    shapes.Point
	Origin shapes.Point
	Color  color.Color
	GeoM   ebiten.GeoM
}

var (
	_ render.Context = (*Recorder)(nil)
	_ render.Target  = (*Recorder)(nil)
)

// Recorder records every call made through it.
type Recorder struct {
	Calls []Call
	size  shapes.Size
	geoM  ebiten.GeoM
}

// New returns a recorder reporting the given target size.
func New(size shapes.Size) *Recorder {
	return &Recorder{size: size}
}

// SetGeoM sets the transform reported by GeoM.
func (r *Recorder) SetGeoM(g ebiten.GeoM) {
	r.geoM = g
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Ops returns the op of every recorded call in order.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Filter returns the calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// IndexOf returns the index of the first call matching op and clr, or -1.
// A nil clr matches any color.
func (r *Recorder) IndexOf(op Op, clr color.Color) int {
	for i, c := range r.Calls {
		if c.Op != op {
			continue
		}
		if clr == nil || sameColor(c.Color, clr) {
			return i
		}
	}
	return -1
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

func (r *Recorder) Clear(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: clr})
}

func (r *Recorder) Draw(d render.Drawable) {
	r.Calls = append(r.Calls, Call{Op: OpDraw})
	d.Draw(r)
}

func (r *Recorder) Size() shapes.Size {
	return r.size
}

func (r *Recorder) GeoM() ebiten.GeoM {
	return r.geoM
}

func (r *Recorder) FillRect(rect shapes.Rect, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Rect: rect, Color: clr})
}

func (r *Recorder) FillPolygon(points []shapes.Point, _ []uint16, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillPolygon, Points: append([]shapes.Point(nil), points...), Color: clr})
}

func (r *Recorder) StrokePolygon(points []shapes.Point, _ float32, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokePolygon, Points: append([]shapes.Point(nil), points...), Color: clr})
}

func (r *Recorder) DrawText(s string, size float64, pos, origin shapes.Point, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpText, Text: s, Size: size, Pos: pos, Origin: origin, Color: clr})
}

func (r *Recorder) DrawImage(_ *ebiten.Image, op *ebiten.DrawImageOptions) {
	c := Call{Op: OpImage}
	if op != nil {
		c.GeoM = op.GeoM
	}
	r.Calls = append(r.Calls, c)
}
