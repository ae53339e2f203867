package player

import (
	"math"

	"github.com/OpticalFlyer/skyfall/config"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
	"github.com/OpticalFlyer/skyfall/sprite"
)

// pivotRadius sizes the debug marker drawn at the arm pivot.
const pivotRadius = 3

// Arm is the weapon arm attached to the player body. It cycles through the
// columns of its sprite sheet and turns to face a target point.
type Arm struct {
	sheet    *sprite.Sheet
	rect     *render.RectangleShape
	pivot    *render.CircleShape
	offset   shapes.Point
	interval float64

	frameCol int
	frameRow int
	counter  float64
}

// NewArm builds an arm from sheet using the sizing in cfg. The frame counter
// starts saturated so the first Update advances the animation.
func NewArm(sheet *sprite.Sheet, cfg config.PlayerConfig) *Arm {
	scale := cfg.SpriteScale
	if scale <= 0 {
		scale = 1
	}
	rect := render.NewRectangleShape().
		WithSize(sheet.FrameSize().Scale(scale)).
		WithOrigin(shapes.Pt(cfg.ArmOrigin[0]*scale, cfg.ArmOrigin[1]*scale)).
		WithTexture(sheet.Image())
	a := &Arm{
		sheet:    sheet,
		rect:     rect,
		pivot:    render.NewCircleShape(pivotRadius).WithFill(render.DebugOutline).WithPointCount(12),
		offset:   shapes.Pt(cfg.ArmOffset[0], cfg.ArmOffset[1]),
		interval: cfg.FrameInterval,
		counter:  math.MaxFloat64,
	}
	a.setSprite()
	return a
}

// Frame returns the current (column, row) frame index.
func (a *Arm) Frame() (col, row int) { return a.frameCol, a.frameRow }

// Rotation returns the current rotation in degrees.
func (a *Arm) Rotation() float64 { return a.rect.Rotation() }

// Shape exposes the arm rectangle.
func (a *Arm) Shape() *render.RectangleShape { return a.rect }

func (a *Arm) SetOutline(on bool) { a.rect.SetOutline(on) }

func (a *Arm) setSprite() {
	a.rect.SetTextureRect(a.sheet.FrameAt(a.frameCol, a.frameRow))
}

func (a *Arm) nextFrame() {
	a.frameCol++
	if a.frameCol >= a.sheet.Columns() {
		a.frameCol = 0
	} else if a.frameCol < 0 {
		a.frameCol = a.sheet.Columns() - 1
	}
	a.setSprite()
}

func (a *Arm) updateAnimation(dt float64) {
	a.counter += dt
	if a.counter > a.interval {
		a.nextFrame()
		a.counter = 0
	}
}

// Update attaches the arm to parent, mirrors it with the body and rotates it
// toward target, a point in world space.
func (a *Arm) Update(target shapes.Point, parent *render.RectangleShape, flipped bool, dt float64) {
	a.rect.SetParent(parent)
	a.rect.SetPosition(a.offset)
	a.rect.SetFlipH(flipped)

	d := target.Sub(a.rect.WorldPosition())
	if d.X != 0 || d.Y != 0 {
		a.rect.SetRotation(math.Atan(d.Y/d.X) * 180 / math.Pi)
	}

	a.updateAnimation(dt)
}

// Draw draws the arm, plus a marker on its pivot when outlines are on.
func (a *Arm) Draw(ctx render.Context) {
	a.rect.Draw(ctx)
	if a.rect.Outline() {
		a.pivot.SetPosition(a.rect.WorldPosition())
		a.pivot.Draw(ctx)
	}
}
