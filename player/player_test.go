package player

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/config"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/render/rendertest"
	"github.com/OpticalFlyer/skyfall/shapes"
	"github.com/OpticalFlyer/skyfall/sprite"
)

const epsilon = 1e-9

type fakeInput struct {
	cursor shapes.Point
	down   map[ebiten.Key]bool
}

func (f *fakeInput) CursorPos() shapes.Point     { return f.cursor }
func (f *fakeInput) IsKeyDown(k ebiten.Key) bool { return f.down[k] }

func newTestArm(t *testing.T) (*Arm, *render.RectangleShape) {
	t.Helper()
	arm := NewArm(sprite.Placeholder(4, 1, 12, 10), config.Default().Player)
	return arm, render.NewRectangleShape()
}

func TestArmFirstTickAdvances(t *testing.T) {
	arm, body := newTestArm(t)
	if col, _ := arm.Frame(); col != 0 {
		t.Fatalf("initial column = %d, want 0", col)
	}
	arm.Update(shapes.Pt(100, 0), body, false, 0.001)
	if col, _ := arm.Frame(); col != 1 {
		t.Errorf("column after first tick = %d, want 1", col)
	}
}

func TestArmAnimationWraps(t *testing.T) {
	arm, body := newTestArm(t)
	target := shapes.Pt(100, 0)

	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		arm.Update(target, body, false, 0.2)
		if col, _ := arm.Frame(); col != w {
			t.Fatalf("tick %d: column = %d, want %d", i, col, w)
		}
	}

	arm.Update(target, body, false, 0.1)
	if col, _ := arm.Frame(); col != 1 {
		t.Errorf("column after short tick = %d, want 1", col)
	}
	arm.Update(target, body, false, 0.1)
	if col, _ := arm.Frame(); col != 2 {
		t.Errorf("column after accumulated ticks = %d, want 2", col)
	}
}

func TestArmTextureRectFollowsFrame(t *testing.T) {
	arm, body := newTestArm(t)
	arm.Update(shapes.Pt(100, 0), body, false, 0)
	got := arm.Shape().TextureRect()
	if got.Min.X != 12 || got.Dx() != 12 || got.Dy() != 10 {
		t.Errorf("TextureRect() = %v, want second 12x10 frame", got)
	}
	if size := arm.Shape().Size(); size != shapes.Sz(48, 40) {
		t.Errorf("arm size = %v, want 4x frame size", size)
	}
	if o := arm.Shape().Origin(); o != shapes.Pt(6, 30) {
		t.Errorf("arm origin = %v, want (6, 30)", o)
	}
}

func TestArmRotation(t *testing.T) {
	// The arm hangs at (0, -74) below a body at the origin.
	tests := []struct {
		name   string
		target shapes.Point
		want   float64
	}{
		{"right", shapes.Pt(100, -74), 0},
		{"down right", shapes.Pt(100, 26), 45},
		{"up right", shapes.Pt(100, -174), -45},
		{"up left", shapes.Pt(-100, -174), 45},
		{"straight down", shapes.Pt(0, 0), 90},
		{"straight up", shapes.Pt(0, -100), -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arm, body := newTestArm(t)
			arm.Update(tt.target, body, false, 0)
			if got := arm.Rotation(); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Rotation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArmRotationKeepsPreviousOnZeroDelta(t *testing.T) {
	arm, body := newTestArm(t)
	arm.Update(shapes.Pt(100, 26), body, false, 0)
	arm.Update(shapes.Pt(0, -74), body, false, 0)
	got := arm.Rotation()
	if math.IsNaN(got) || math.Abs(got-45) > epsilon {
		t.Errorf("Rotation() = %v, want previous 45", got)
	}
}

func TestArmFollowsParent(t *testing.T) {
	arm, body := newTestArm(t)
	body.SetPosition(shapes.Pt(300, 50))
	arm.Update(shapes.Pt(400, 0), body, true, 0)
	if got := arm.Shape().WorldPosition(); got != shapes.Pt(300, -24) {
		t.Errorf("arm WorldPosition() = %v, want (300, -24)", got)
	}
	if !arm.Shape().FlipH() {
		t.Error("arm should be flipped with the body")
	}
}

func TestLocalPlayerMovement(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name  string
		down  []ebiten.Key
		wantX float64
	}{
		{"idle", nil, 400},
		{"left", []ebiten.Key{ebiten.KeyA}, 250},
		{"right arrow", []ebiten.Key{ebiten.KeyArrowRight}, 550},
		{"both cancel", []ebiten.Key{ebiten.KeyA, ebiten.KeyD}, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewLocalPlayer(cfg.Player, cfg.Keys, sprite.Placeholder(4, 1, 12, 10))
			in := &fakeInput{down: map[ebiten.Key]bool{}}
			for _, k := range tt.down {
				in.down[k] = true
			}
			p.Update(0.5, in, render.NewCamera())
			if got := p.Position(); got.X != tt.wantX || got.Y != 0 {
				t.Errorf("Position() = %v, want (%v, 0)", got, tt.wantX)
			}
		})
	}
}

func TestLocalPlayerFacesCursor(t *testing.T) {
	cfg := config.Default()
	p := NewLocalPlayer(cfg.Player, cfg.Keys, sprite.Placeholder(4, 1, 12, 10))
	cam := render.NewCamera()
	in := &fakeInput{down: map[ebiten.Key]bool{}}

	in.cursor = shapes.Pt(100, 0)
	p.Update(0, in, cam)
	if !p.Flipped() {
		t.Error("player should face left when the cursor is left of it")
	}

	// The camera shifts the world left, so the same screen point lands
	// right of the player.
	cam.SetPosition(shapes.Pt(-400, 0))
	p.Update(0, in, cam)
	if p.Flipped() {
		t.Error("player should face right when the world cursor is right of it")
	}
}

func TestLocalPlayerDebugOutlines(t *testing.T) {
	cfg := config.Default()
	p := NewLocalPlayer(cfg.Player, cfg.Keys, sprite.Placeholder(4, 1, 12, 10))
	rec := rendertest.New(shapes.Sz(800, 600))

	p.Draw(rec)
	if n := len(rec.Filter(rendertest.OpStrokePolygon)); n != 0 {
		t.Fatalf("outlines drawn with debug off: %d", n)
	}
	if rec.IndexOf(rendertest.OpFillPolygon, render.DebugOutline) >= 0 {
		t.Fatal("pivot marker drawn with debug off")
	}

	p.ToggleDebug()
	if !p.Debug() {
		t.Fatal("Debug() = false after ToggleDebug")
	}
	rec.Reset()
	p.Draw(rec)
	if n := len(rec.Filter(rendertest.OpStrokePolygon)); n != 2 {
		t.Errorf("outlines drawn with debug on: %d, want 2", n)
	}
	if rec.IndexOf(rendertest.OpFillPolygon, nil) > rec.IndexOf(rendertest.OpImage, nil) {
		t.Error("body should be drawn before the arm")
	}

	marker := rec.IndexOf(rendertest.OpFillPolygon, render.DebugOutline)
	if marker < rec.IndexOf(rendertest.OpImage, nil) {
		t.Fatalf("pivot marker at %d, want after the arm image", marker)
	}
	pts := rec.Calls[marker].Points
	if len(pts) != 12 {
		t.Fatalf("pivot marker has %d points, want 12", len(pts))
	}
	var centre shapes.Point
	for _, pt := range pts {
		centre = centre.Add(pt)
	}
	centre = shapes.Pt(centre.X/12, centre.Y/12)
	want := p.Arm().Shape().WorldPosition()
	if math.Abs(centre.X-want.X) > 1e-6 || math.Abs(centre.Y-want.Y) > 1e-6 {
		t.Errorf("pivot marker centred at %v, want arm pivot %v", centre, want)
	}
}
