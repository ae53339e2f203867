// Package ui holds the retained-mode widgets: labels, buttons and the
// panels that group them.
package ui

import (
	"github.com/OpticalFlyer/skyfall/input"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

// Component represents the basic building block of the UI system.
// All UI elements must implement this interface.
type Component interface {
	render.Drawable
	Update(dt float64)
	// HandleEvent consumes one input event and reports whether it
	// completed a click.
	HandleEvent(e input.Event) bool
	Bounds() shapes.Rect
	// Place moves the component so its bounds start at topLeft.
	Place(topLeft shapes.Point)
	SetParent(parent Container)
	GetParent() Container
}

// Container represents a Component that can hold and manage other Components.
type Container interface {
	Component
	AddChild(child Component)
	RemoveChild(child Component)
	Children() []Component
	// ContentBounds is the area children are laid out in.
	ContentBounds() shapes.Rect
	Layout() Layout
}

// Layout defines how Components are arranged within a Container
type Layout interface {
	ArrangeChildren(container Container)
}

// VerticalLayout stacks children top to bottom, centred horizontally.
type VerticalLayout struct {
	Padding float64
	Spacing float64
}

func (l VerticalLayout) ArrangeChildren(c Container) {
	area := c.ContentBounds()
	y := area.Pos.Y + l.Padding
	for _, child := range c.Children() {
		size := child.Bounds().Size
		child.Place(shapes.Pt(area.Pos.X+(area.Size.W-size.W)/2, y))
		y += size.H + l.Spacing
	}
}
