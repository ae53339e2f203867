package ui

import (
	"image/color"

	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

const defaultFontSize = 24

var _ render.Drawable = (*Label)(nil)

// Label is a line of text anchored at a point. The origin fraction selects
// which point of the text box sits on the anchor: (0,0) top-left, (0.5,0.5)
// centre.
type Label struct {
	text     string
	fontSize float64
	color    color.Color
	origin   shapes.Point
	position shapes.Point
}

// NewLabel returns a black label with the default font size.
func NewLabel(text string) *Label {
	return &Label{
		text:     text,
		fontSize: defaultFontSize,
		color:    render.Black,
	}
}

func (l *Label) WithFontSize(size float64) *Label {
	l.fontSize = size
	return l
}

func (l *Label) WithColor(c color.Color) *Label {
	l.color = c
	return l
}

func (l *Label) WithOrigin(o shapes.Point) *Label {
	l.origin = o
	return l
}

func (l *Label) SetText(text string)        { l.text = text }
func (l *Label) Text() string               { return l.text }
func (l *Label) FontSize() float64          { return l.fontSize }
func (l *Label) SetOrigin(o shapes.Point)   { l.origin = o }
func (l *Label) Origin() shapes.Point       { return l.origin }
func (l *Label) SetPosition(p shapes.Point) { l.position = p }
func (l *Label) Position() shapes.Point     { return l.position }

func (l *Label) Draw(ctx render.Context) {
	ctx.DrawText(l.text, l.fontSize, l.position, l.origin, l.color)
}
