package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/OpticalFlyer/skyfall/input"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

const (
	titleBarHeight = 20.0
	titleFontSize  = 14
	panelPadding   = 12.0
	panelSpacing   = 10.0
	fadeDuration   = 0.25 // seconds
)

var (
	panelColor = render.Color{0.39, 0.39, 0.39, 0.78}
	titleColor = render.Color{0.24, 0.24, 0.24, 0.78}
)

var _ Container = (*Panel)(nil)

// Panel is a titled box that stacks its children vertically. It starts
// hidden; Show fades it in.
type Panel struct {
	X, Y          float64
	Width, Height float64

	children []Component
	layout   Layout
	parent   Container
	title    *Label

	visible bool
	alpha   float32
	fade    *gween.Tween
}

func NewPanel(x, y, width, height float64, title string) *Panel {
	return &Panel{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		layout: VerticalLayout{Padding: panelPadding, Spacing: panelSpacing},
		title:  NewLabel(title).WithFontSize(titleFontSize).WithColor(render.White).WithOrigin(shapes.Pt(0.5, 0.5)),
	}
}

func (p *Panel) SetParent(parent Container) { p.parent = parent }
func (p *Panel) GetParent() Container       { return p.parent }
func (p *Panel) Children() []Component      { return p.children }
func (p *Panel) Layout() Layout             { return p.layout }
func (p *Panel) Visible() bool              { return p.visible }

func (p *Panel) Bounds() shapes.Rect {
	return shapes.R(p.X, p.Y, p.Width, p.Height)
}

// ContentBounds is the panel area below the title bar.
func (p *Panel) ContentBounds() shapes.Rect {
	return shapes.R(p.X, p.Y+titleBarHeight, p.Width, p.Height-titleBarHeight)
}

func (p *Panel) Place(topLeft shapes.Point) {
	p.X, p.Y = topLeft.X, topLeft.Y
	p.arrange()
}

func (p *Panel) AddChild(child Component) {
	child.SetParent(p)
	p.children = append(p.children, child)
	p.arrange()
}

func (p *Panel) RemoveChild(child Component) {
	for i, c := range p.children {
		if c == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			child.SetParent(nil)
			break
		}
	}
	p.arrange()
}

func (p *Panel) arrange() {
	p.title.SetPosition(shapes.Pt(p.X+p.Width/2, p.Y+titleBarHeight/2))
	if p.layout != nil {
		p.layout.ArrangeChildren(p)
	}
}

// Show makes the panel visible and starts the fade-in.
func (p *Panel) Show() {
	p.visible = true
	p.alpha = 0
	p.fade = gween.New(0, 1, fadeDuration, ease.OutQuad)
}

// Hide makes the panel invisible immediately.
func (p *Panel) Hide() {
	p.visible = false
	p.fade = nil
}

// Alpha returns the current fade level in [0, 1].
func (p *Panel) Alpha() float32 {
	return p.alpha
}

// UpdateWindowSize centres the panel in a window of the given size.
func (p *Panel) UpdateWindowSize(width, height int) {
	p.Place(shapes.Pt((float64(width)-p.Width)/2, (float64(height)-p.Height)/2))
}

func (p *Panel) Update(dt float64) {
	if p.fade != nil {
		v, done := p.fade.Update(float32(dt))
		p.alpha = v
		if done {
			p.alpha = 1
			p.fade = nil
		}
	}
	for _, c := range p.children {
		c.Update(dt)
	}
}

// HandleEvent forwards e to every child so each can track hover state, and
// reports whether any of them clicked. Hidden panels ignore input.
func (p *Panel) HandleEvent(e input.Event) bool {
	if !p.visible {
		return false
	}
	clicked := false
	for _, c := range p.children {
		if c.HandleEvent(e) {
			clicked = true
		}
	}
	return clicked
}

func (p *Panel) Draw(ctx render.Context) {
	if !p.visible {
		return
	}
	ctx = withAlpha(ctx, p.alpha)

	// Draw panel background
	ctx.FillRect(p.Bounds(), panelColor)

	// Draw title bar
	ctx.FillRect(shapes.R(p.X, p.Y, p.Width, titleBarHeight), titleColor)
	p.title.Draw(ctx)

	for _, c := range p.children {
		c.Draw(ctx)
	}
}
