// Package render is the thin drawing layer between the game objects and
// Ebitengine. Game objects implement Drawable and draw through a Context;
// the Window is the Ebitengine-backed Context and Target.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/shapes"
)

// Drawable is anything that can render itself through a Context.
type Drawable interface {
	Draw(ctx Context)
}

// Context is the drawing surface handed to a Drawable. All coordinates are
// in the drawable's space; the context applies its own transform (the camera
// for world objects, identity for overlays) before rasterising.
type Context interface {
	// GeoM returns the transform the context applies to everything drawn.
	GeoM() ebiten.GeoM
	FillRect(r shapes.Rect, clr color.Color)
	// FillPolygon fills triangles given as indices into points.
	FillPolygon(points []shapes.Point, indices []uint16, clr color.Color)
	// StrokePolygon draws a closed outline through points.
	StrokePolygon(points []shapes.Point, width float32, clr color.Color)
	// DrawText renders s so that the fractional origin of its measured box
	// sits at pos.
	DrawText(s string, size float64, pos, origin shapes.Point, clr color.Color)
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
}

// Target is a render target a scene draws a frame into.
type Target interface {
	Clear(clr color.Color)
	Draw(d Drawable)
	Size() shapes.Size
}

// quadIndices triangulates the four corners of a quad.
var quadIndices = []uint16{0, 1, 2, 0, 2, 3}
