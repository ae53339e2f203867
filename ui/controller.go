package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/input"
	"github.com/OpticalFlyer/skyfall/render"
)

// Controller manages all UI elements
type Controller struct {
	panels []*Panel
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		panels: make([]*Panel, 0),
	}
}

// AddPanel adds a new panel to the UI
func (c *Controller) AddPanel(panel *Panel) {
	c.panels = append(c.panels, panel)
}

// HandleEvent routes e to every visible panel and reports whether any
// button clicked.
func (c *Controller) HandleEvent(e input.Event) bool {
	clicked := false
	for _, panel := range c.panels {
		if panel.HandleEvent(e) {
			clicked = true
		}
	}
	return clicked
}

// Update advances fades and child state by dt seconds.
func (c *Controller) Update(dt float64) {
	for _, panel := range c.panels {
		panel.Update(dt)
	}
}

// Draw draws all UI elements
func (c *Controller) Draw(ctx render.Context) {
	for _, panel := range c.panels {
		panel.Draw(ctx)
	}
}

// UpdateWindowSize updates the window size for all panels
func (c *Controller) UpdateWindowSize(width, height int) {
	for _, panel := range c.panels {
		panel.UpdateWindowSize(width, height)
	}
}

// DebugInfo returns the frame and tick rates for the debug overlay.
func (c *Controller) DebugInfo() string {
	return fmt.Sprintf("FPS: %.2f TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS())
}
