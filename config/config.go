// Package config provides YAML-based configuration for the game, with
// embedded defaults.
package config

import "github.com/hajimehoshi/ebiten/v2"

// Config contains all configuration for SkyFall.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Scene  SceneConfig  `yaml:"scene"`
	Keys   KeyConfig    `yaml:"keys"`
	Player PlayerConfig `yaml:"player"`
	Level  LevelConfig  `yaml:"level"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig defines the game window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	VSync     bool   `yaml:"vsync"`
	Resizable bool   `yaml:"resizable"`
}

// SceneConfig defines scene-wide rendering parameters.
type SceneConfig struct {
	Background [4]float32 `yaml:"background"`
}

// KeyConfig binds actions to keys. Values use Ebitengine key names such as
// "Escape", "F2" or "ArrowLeft".
type KeyConfig struct {
	Pause ebiten.Key `yaml:"pause"`
	Debug ebiten.Key `yaml:"debug"`
	Left  ebiten.Key `yaml:"left"`
	Right ebiten.Key `yaml:"right"`
}

// PlayerConfig defines the local player and its arm.
type PlayerConfig struct {
	Start         [2]float64 `yaml:"start"`
	BodySize      [2]float64 `yaml:"body_size"`
	BodyColor     [4]float32 `yaml:"body_color"`
	Speed         float64    `yaml:"speed"`
	Sprite        string     `yaml:"sprite"`
	SpriteScale   float64    `yaml:"sprite_scale"`
	ArmOffset     [2]float64 `yaml:"arm_offset"`
	ArmOrigin     [2]float64 `yaml:"arm_origin"`
	FrameInterval float64    `yaml:"frame_interval"`
}

// LevelConfig selects the background geometry. An empty Path uses the
// built-in ground rectangle.
type LevelConfig struct {
	Path        string     `yaml:"path"`
	GroundSize  [2]float64 `yaml:"ground_size"`
	GroundColor [4]float32 `yaml:"ground_color"`

	// Shapefile coordinate mapping: planar, geographic or webmercator.
	Projection string     `yaml:"projection"`
	Scale      float64    `yaml:"scale"`
	Zoom       int        `yaml:"zoom"`
	TileSize   float64    `yaml:"tile_size"`
	Origin     [2]float64 `yaml:"origin"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}
