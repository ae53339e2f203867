package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/shapes"
)

// Camera is a translation applied to everything drawn in world space.
type Camera struct {
	position shapes.Point
}

// NewCamera returns a camera at the origin.
func NewCamera() *Camera {
	return &Camera{}
}

// SetPosition sets the world-to-screen offset.
func (c *Camera) SetPosition(p shapes.Point) {
	c.position = p
}

// Position returns the world-to-screen offset.
func (c *Camera) Position() shapes.Point {
	return c.position
}

// GeoM returns the camera transform.
func (c *Camera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(c.position.X, c.position.Y)
	return g
}

// WorldToScreen converts a world point to screen coordinates.
func (c *Camera) WorldToScreen(p shapes.Point) shapes.Point {
	return p.Add(c.position)
}

// ScreenToWorld converts a screen point (e.g. the cursor) to world coordinates.
func (c *Camera) ScreenToWorld(p shapes.Point) shapes.Point {
	return p.Sub(c.position)
}
