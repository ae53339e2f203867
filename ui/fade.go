package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

// fadeContext multiplies the alpha of everything drawn through it.
type fadeContext struct {
	render.Context
	alpha float32
}

func withAlpha(ctx render.Context, alpha float32) render.Context {
	if alpha >= 1 {
		return ctx
	}
	return fadeContext{Context: ctx, alpha: alpha}
}

func (f fadeContext) scale(c color.Color) color.Color {
	r, g, b, a := c.RGBA()
	k := f.alpha
	return color.RGBA64{
		R: uint16(float32(r) * k),
		G: uint16(float32(g) * k),
		B: uint16(float32(b) * k),
		A: uint16(float32(a) * k),
	}
}

func (f fadeContext) FillRect(r shapes.Rect, clr color.Color) {
	f.Context.FillRect(r, f.scale(clr))
}

func (f fadeContext) FillPolygon(points []shapes.Point, indices []uint16, clr color.Color) {
	f.Context.FillPolygon(points, indices, f.scale(clr))
}

func (f fadeContext) StrokePolygon(points []shapes.Point, width float32, clr color.Color) {
	f.Context.StrokePolygon(points, width, f.scale(clr))
}

func (f fadeContext) DrawText(s string, size float64, pos, origin shapes.Point, clr color.Color) {
	f.Context.DrawText(s, size, pos, origin, f.scale(clr))
}

func (f fadeContext) DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions) {
	var o ebiten.DrawImageOptions
	if op != nil {
		o = *op
	}
	o.ColorScale.ScaleAlpha(f.alpha)
	f.Context.DrawImage(img, &o)
}
