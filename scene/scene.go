// Package scene drives the game world for one tick: it routes input to the
// player, updates the player and the follow camera and draws the frame.
package scene

import (
	"github.com/charmbracelet/log"

	"github.com/OpticalFlyer/skyfall/config"
	"github.com/OpticalFlyer/skyfall/input"
	"github.com/OpticalFlyer/skyfall/level"
	"github.com/OpticalFlyer/skyfall/player"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
)

// SceneManager owns the world: background, level geometry and the local
// player.
type SceneManager struct {
	background render.Color
	player     *player.LocalPlayer
	level      *level.Level
	windowSize shapes.Size
	keys       config.KeyConfig
	logger     *log.Logger
}

// New creates a scene around an already built player and level.
func New(cfg config.Config, p *player.LocalPlayer, lvl *level.Level, logger *log.Logger) *SceneManager {
	return &SceneManager{
		background: render.Color(cfg.Scene.Background),
		player:     p,
		level:      lvl,
		keys:       cfg.Keys,
		logger:     logger,
	}
}

func (s *SceneManager) Player() *player.LocalPlayer { return s.player }
func (s *SceneManager) WindowSize() shapes.Size     { return s.windowSize }

// Resize is a no-op; the window size is sampled on every draw.
func (s *SceneManager) Resize(shapes.Size) {}

// OnInput handles one input event and reports the state the game should be
// in afterwards. The pause key pauses on press; the debug key toggles the
// player's debug outlines.
func (s *SceneManager) OnInput(e input.Event) GameState {
	if e.IsKeyPress(s.keys.Pause) {
		return Paused
	}
	if e.IsKeyPress(s.keys.Debug) {
		s.player.ToggleDebug()
		s.logger.Debug("debug overlay", "enabled", s.player.Debug())
	}
	return InGame
}

// UpdateCamera centres the camera on the player, shifted against the cursor
// offset from half the window width.
func (s *SceneManager) UpdateCamera(in player.Input, cam *render.Camera) {
	m := in.CursorPos().SubScalar(s.windowSize.W / 2)
	pos := s.player.Position()
	cam.SetPosition(shapes.Pt(-pos.X-m.X, -pos.Y-m.Y))
}

// Update advances the player, then the camera.
func (s *SceneManager) Update(dt float64, in player.Input, cam *render.Camera) {
	s.player.Update(dt, in, cam)
	s.UpdateCamera(in, cam)
}

// Draw clears t to the background color, draws the level and then the
// player, and records the target size for the next camera update.
func (s *SceneManager) Draw(t render.Target) {
	t.Clear(s.background)
	t.Draw(s.level)
	t.Draw(s.player)
	s.windowSize = t.Size()
}
