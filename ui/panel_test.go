package ui

import (
	"testing"

	"github.com/OpticalFlyer/skyfall/input"
	"github.com/OpticalFlyer/skyfall/render/rendertest"
	"github.com/OpticalFlyer/skyfall/shapes"
)

func newMenu() (*Panel, *Button, *Button) {
	panel := NewPanel(0, 0, 240, 160, "Paused")
	resume := NewButton("Resume").WithSize(shapes.Sz(200, 40))
	quit := NewButton("Quit").WithSize(shapes.Sz(200, 40))
	panel.AddChild(resume)
	panel.AddChild(quit)
	return panel, resume, quit
}

func TestPanelLayoutStacksChildren(t *testing.T) {
	panel, resume, quit := newMenu()
	panel.UpdateWindowSize(800, 600)

	if got := panel.Bounds(); got != shapes.R(280, 220, 240, 160) {
		t.Fatalf("panel bounds = %v, want centred (280,220 240x160)", got)
	}

	wantResume := shapes.R(300, 220+titleBarHeight+panelPadding, 200, 40)
	if got := resume.Bounds(); got != wantResume {
		t.Errorf("resume bounds = %v, want %v", got, wantResume)
	}
	wantQuit := shapes.R(300, wantResume.Bottom()+panelSpacing, 200, 40)
	if got := quit.Bounds(); got != wantQuit {
		t.Errorf("quit bounds = %v, want %v", got, wantQuit)
	}
	if resume.GetParent() != Container(panel) {
		t.Error("AddChild did not set the parent")
	}
}

func TestHiddenPanelIgnoresInput(t *testing.T) {
	panel, resume, _ := newMenu()
	panel.UpdateWindowSize(800, 600)
	c := resume.Bounds().Center()

	for _, e := range []input.Event{input.MoveEvent(c.X, c.Y), press, release} {
		if panel.HandleEvent(e) {
			t.Fatal("hidden panel reported a click")
		}
	}
	if resume.State() != Idle {
		t.Errorf("resume state = %v, want idle", resume.State())
	}

	rec := rendertest.New(shapes.Sz(800, 600))
	panel.Draw(rec)
	if len(rec.Calls) != 0 {
		t.Errorf("hidden panel drew %v", rec.Ops())
	}
}

func TestControllerRoutesClicks(t *testing.T) {
	panel, resume, quit := newMenu()
	resumed, quitted := 0, 0
	resume.OnClick(func() { resumed++ })
	quit.OnClick(func() { quitted++ })

	c := NewController()
	c.AddPanel(panel)
	c.UpdateWindowSize(1024, 768)
	panel.Show()

	centre := resume.Bounds().Center()
	clicked := false
	for _, e := range []input.Event{input.MoveEvent(centre.X, centre.Y), press, release} {
		if c.HandleEvent(e) {
			clicked = true
		}
	}
	if !clicked || resumed != 1 || quitted != 0 {
		t.Errorf("clicked=%v resumed=%d quitted=%d, want true/1/0", clicked, resumed, quitted)
	}
	if quit.State() != Idle {
		t.Errorf("quit state = %v, want idle", quit.State())
	}
}

func TestPanelFadesIn(t *testing.T) {
	panel, _, _ := newMenu()
	panel.Show()
	if panel.Alpha() != 0 {
		t.Fatalf("alpha right after Show = %v, want 0", panel.Alpha())
	}

	panel.Update(fadeDuration / 2)
	if a := panel.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("alpha halfway = %v, want strictly between 0 and 1", a)
	}

	panel.Update(fadeDuration)
	if panel.Alpha() != 1 {
		t.Errorf("alpha after fade = %v, want 1", panel.Alpha())
	}
}

func TestPanelDrawFadesColors(t *testing.T) {
	panel, _, _ := newMenu()
	panel.Show()
	panel.Update(fadeDuration / 2)

	rec := rendertest.New(shapes.Sz(800, 600))
	panel.Draw(rec)

	fills := rec.Filter(rendertest.OpFillRect)
	if len(fills) != 4 {
		t.Fatalf("fill-rect calls = %d, want 4 (background, title bar, two buttons)", len(fills))
	}
	_, _, _, a := fills[0].Color.RGBA()
	_, _, _, full := panelColor.RGBA()
	if a == 0 || a >= full {
		t.Errorf("faded background alpha = %#x, want between 0 and %#x", a, full)
	}
}

func TestRemoveChildRelayouts(t *testing.T) {
	panel, resume, quit := newMenu()
	panel.RemoveChild(resume)

	if len(panel.Children()) != 1 {
		t.Fatalf("children = %d, want 1", len(panel.Children()))
	}
	if resume.GetParent() != nil {
		t.Error("removed child still has a parent")
	}
	if got := quit.Bounds().Pos.Y; got != titleBarHeight+panelPadding {
		t.Errorf("quit moved to y=%v, want %v", got, titleBarHeight+panelPadding)
	}
}
