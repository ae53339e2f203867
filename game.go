package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/skyfall/config"
	"github.com/OpticalFlyer/skyfall/input"
	"github.com/OpticalFlyer/skyfall/level"
	"github.com/OpticalFlyer/skyfall/player"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/scene"
	"github.com/OpticalFlyer/skyfall/shapes"
	"github.com/OpticalFlyer/skyfall/sprite"
	"github.com/OpticalFlyer/skyfall/ui"
)

// Pause menu layout
const (
	menuWidth    = 240
	menuHeight   = 160
	buttonWidth  = 200
	buttonHeight = 40
)

// SkyFall implements ebiten.Game interface.
type SkyFall struct {
	cfg    config.Config
	logger *log.Logger

	input  *input.Manager
	camera *render.Camera
	window *render.Window
	scene  *scene.SceneManager

	ui    *ui.Controller
	menu  *ui.Panel
	state scene.GameState
	quit  bool
}

func newSkyFall(cfg config.Config, logger *log.Logger, sheet *sprite.Sheet, lvl *level.Level) (*SkyFall, error) {
	fonts, err := render.NewFonts()
	if err != nil {
		return nil, fmt.Errorf("failed to load fonts: %w", err)
	}

	g := &SkyFall{
		cfg:    cfg,
		logger: logger,
		input:  input.NewManager(),
		camera: render.NewCamera(),
		ui:     ui.NewController(),
		state:  scene.InGame,
	}
	g.window = render.NewWindow(fonts, g.camera)

	p := player.NewLocalPlayer(cfg.Player, cfg.Keys, sheet)
	g.scene = scene.New(cfg, p, lvl, logger)

	// Pause menu
	g.menu = ui.NewPanel(0, 0, menuWidth, menuHeight, "Paused")
	g.menu.AddChild(ui.NewButton("Resume").
		WithSize(shapes.Sz(buttonWidth, buttonHeight)).
		OnClick(func() { g.setState(scene.InGame) }))
	g.menu.AddChild(ui.NewButton("Quit").
		WithSize(shapes.Sz(buttonWidth, buttonHeight)).
		OnClick(func() { g.quit = true }))
	g.ui.AddPanel(g.menu)
	g.ui.UpdateWindowSize(cfg.Window.Width, cfg.Window.Height)

	return g, nil
}

func (g *SkyFall) setState(s scene.GameState) {
	if s == g.state {
		return
	}
	g.logger.Info("game state changed", "from", g.state, "to", s)
	g.state = s
	if s == scene.Paused {
		g.menu.Show()
		// Buttons only see input while paused; resync their hover state.
		c := g.input.CursorPos()
		g.ui.HandleEvent(input.MoveEvent(c.X, c.Y))
	} else {
		g.menu.Hide()
	}
}

// handleEvent routes e to the scene while playing and to the pause menu
// while paused. The pause key also closes the menu.
func (g *SkyFall) handleEvent(e input.Event) {
	switch g.state {
	case scene.InGame:
		g.setState(g.scene.OnInput(e))
	case scene.Paused:
		if e.IsKeyPress(g.cfg.Keys.Pause) {
			g.setState(scene.InGame)
			return
		}
		g.ui.HandleEvent(e)
	}
}

func (g *SkyFall) tick(events []input.Event, dt float64) error {
	for _, e := range events {
		g.handleEvent(e)
	}
	if g.quit {
		g.logger.Info("quitting")
		return ebiten.Termination
	}

	g.ui.Update(dt)
	if g.state == scene.InGame {
		g.scene.Update(dt, g.input, g.camera)
	}
	return nil
}

func (g *SkyFall) Update() error {
	return g.tick(g.input.Poll(), 1/float64(ebiten.TPS()))
}

func (g *SkyFall) Draw(screen *ebiten.Image) {
	g.window.Begin(screen)
	g.scene.Draw(g.window)

	// Draw UI
	g.window.DrawOverlay(g.ui)

	// Draw debug overlay if enabled
	if g.scene.Player().Debug() {
		pos := g.scene.Player().Position()
		cam := g.camera.Position()
		g.window.DebugPrint(fmt.Sprintf("%s\nPlayer: %.0f,%.0f\nCamera: %.0f,%.0f\nState: %s",
			g.ui.DebugInfo(), pos.X, pos.Y, cam.X, cam.Y, g.state))
	}
}

func (g *SkyFall) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	g.scene.Resize(shapes.Sz(float64(outsideWidth), float64(outsideHeight)))
	return outsideWidth, outsideHeight
}
