// Package player implements the locally controlled character: a body
// rectangle that walks left and right and an animated arm that follows the
// cursor.
package player

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/config"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
	"github.com/OpticalFlyer/skyfall/sprite"
)

// Input is the subset of the input manager the player reads.
type Input interface {
	CursorPos() shapes.Point
	IsKeyDown(k ebiten.Key) bool
}

// LocalPlayer is the player controlled from this machine.
type LocalPlayer struct {
	body    *render.RectangleShape
	arm     *Arm
	speed   float64
	left    []ebiten.Key
	right   []ebiten.Key
	flipped bool
	debug   bool
}

// NewLocalPlayer places the player at cfg.Start. The body origin is its
// bottom centre, so the position is where the feet touch the ground.
func NewLocalPlayer(cfg config.PlayerConfig, keys config.KeyConfig, sheet *sprite.Sheet) *LocalPlayer {
	size := shapes.Sz(cfg.BodySize[0], cfg.BodySize[1])
	body := render.NewRectangleShape().
		WithSize(size).
		WithOrigin(size.Anchor(shapes.Pt(0.5, 1))).
		WithPosition(shapes.Pt(cfg.Start[0], cfg.Start[1])).
		WithFill(render.Color(cfg.BodyColor))
	return &LocalPlayer{
		body:  body,
		arm:   NewArm(sheet, cfg),
		speed: cfg.Speed,
		left:  []ebiten.Key{keys.Left, ebiten.KeyArrowLeft},
		right: []ebiten.Key{keys.Right, ebiten.KeyArrowRight},
	}
}

func (p *LocalPlayer) Position() shapes.Point       { return p.body.Position() }
func (p *LocalPlayer) Body() *render.RectangleShape { return p.body }
func (p *LocalPlayer) Arm() *Arm                    { return p.arm }
func (p *LocalPlayer) Flipped() bool                { return p.flipped }
func (p *LocalPlayer) Debug() bool                  { return p.debug }

// ToggleDebug switches the debug outlines on the body and arm.
func (p *LocalPlayer) ToggleDebug() {
	p.debug = !p.debug
	p.body.SetOutline(p.debug)
	p.arm.SetOutline(p.debug)
}

// Update moves the body from the held keys, faces it toward the cursor and
// updates the arm. cam converts the cursor from screen to world space.
func (p *LocalPlayer) Update(dt float64, in Input, cam *render.Camera) {
	var dir float64
	if anyDown(in, p.left) {
		dir--
	}
	if anyDown(in, p.right) {
		dir++
	}
	pos := p.body.Position()
	if dir != 0 {
		pos.X += dir * p.speed * dt
		p.body.SetPosition(pos)
	}

	target := cam.ScreenToWorld(in.CursorPos())
	p.flipped = target.X < pos.X
	p.body.SetFlipH(p.flipped)
	p.arm.Update(target, p.body, p.flipped, dt)
}

func anyDown(in Input, keys []ebiten.Key) bool {
	for _, k := range keys {
		if in.IsKeyDown(k) {
			return true
		}
	}
	return false
}

func (p *LocalPlayer) Draw(ctx render.Context) {
	p.body.Draw(ctx)
	p.arm.Draw(ctx)
}
