package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/shapes"
)

var _ Drawable = (*RectangleShape)(nil)

// RectangleShape is a filled or textured rectangle with an origin, rotation
// and horizontal flip. Its position is relative to an optional parent
// rectangle; the parent is not owned and is usually re-attached every update.
type RectangleShape struct {
	position shapes.Point
	size     shapes.Size
	origin   shapes.Point // pixels, in local space
	rotation float64      // degrees
	flipH    bool
	fill     color.Color

	texture *ebiten.Image
	texRect image.Rectangle

	parent  *RectangleShape
	outline bool
}

// NewRectangleShape returns a white, zero-sized rectangle at the origin.
func NewRectangleShape() *RectangleShape {
	return &RectangleShape{fill: White}
}

func (r *RectangleShape) WithSize(s shapes.Size) *RectangleShape {
	r.size = s
	return r
}

func (r *RectangleShape) WithPosition(p shapes.Point) *RectangleShape {
	r.position = p
	return r
}

// WithOrigin sets the origin in pixels.
func (r *RectangleShape) WithOrigin(o shapes.Point) *RectangleShape {
	r.origin = o
	return r
}

func (r *RectangleShape) WithFill(c color.Color) *RectangleShape {
	r.fill = c
	return r
}

// WithTexture draws img instead of the fill color. The whole image is used
// until SetTextureRect narrows it.
func (r *RectangleShape) WithTexture(img *ebiten.Image) *RectangleShape {
	r.texture = img
	if img != nil {
		r.texRect = img.Bounds()
	}
	return r
}

func (r *RectangleShape) SetPosition(p shapes.Point)  { r.position = p }
func (r *RectangleShape) Position() shapes.Point      { return r.position }
func (r *RectangleShape) SetSize(s shapes.Size)       { r.size = s }
func (r *RectangleShape) Size() shapes.Size           { return r.size }
func (r *RectangleShape) SetOrigin(o shapes.Point)    { r.origin = o }
func (r *RectangleShape) Origin() shapes.Point        { return r.origin }
func (r *RectangleShape) SetRotation(deg float64)     { r.rotation = deg }
func (r *RectangleShape) Rotation() float64           { return r.rotation }
func (r *RectangleShape) SetFlipH(flip bool)          { r.flipH = flip }
func (r *RectangleShape) FlipH() bool                 { return r.flipH }
func (r *RectangleShape) SetFill(c color.Color)       { r.fill = c }
func (r *RectangleShape) SetOutline(on bool)          { r.outline = on }
func (r *RectangleShape) Outline() bool               { return r.outline }
func (r *RectangleShape) SetParent(p *RectangleShape) { r.parent = p }

// SetTextureRect selects the source region of the texture.
func (r *RectangleShape) SetTextureRect(rect image.Rectangle) {
	r.texRect = rect
}

func (r *RectangleShape) TextureRect() image.Rectangle {
	return r.texRect
}

// WorldPosition resolves the position through the parent chain.
func (r *RectangleShape) WorldPosition() shapes.Point {
	if r.parent == nil {
		return r.position
	}
	return r.parent.WorldPosition().Add(r.position)
}

// Bounds returns the unrotated world-space box of the shape.
func (r *RectangleShape) Bounds() shapes.Rect {
	return shapes.Rect{Pos: r.WorldPosition().Sub(r.origin), Size: r.size}
}

// Transform maps local pixel coordinates (origin at the top-left of the
// unrotated box) to world space.
func (r *RectangleShape) Transform() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-r.origin.X, -r.origin.Y)
	if r.flipH {
		g.Scale(-1, 1)
	}
	g.Rotate(r.rotation * math.Pi / 180)
	wp := r.WorldPosition()
	g.Translate(wp.X, wp.Y)
	return g
}

// Corners returns the transformed corners clockwise from the top-left.
func (r *RectangleShape) Corners() []shapes.Point {
	g := r.Transform()
	local := shapes.Rect{Size: r.size}.Corners()
	out := make([]shapes.Point, len(local))
	for i, p := range local {
		x, y := g.Apply(p.X, p.Y)
		out[i] = shapes.Pt(x, y)
	}
	return out
}

func (r *RectangleShape) Draw(ctx Context) {
	corners := r.Corners()
	if r.texture != nil && !r.texRect.Empty() {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.size.W/float64(r.texRect.Dx()), r.size.H/float64(r.texRect.Dy()))
		op.GeoM.Concat(r.Transform())
		ctx.DrawImage(r.texture.SubImage(r.texRect).(*ebiten.Image), op)
	} else {
		ctx.FillPolygon(corners, quadIndices, r.fill)
	}
	if r.outline {
		ctx.StrokePolygon(corners, 1, DebugOutline)
	}
}
