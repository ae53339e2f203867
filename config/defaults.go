package config

import (
	_ "embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed defaults/skyfall.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches
// defaults/skyfall.yaml and is the base every loaded file is merged onto.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     800,
			Height:    600,
			Title:     "SkyFall",
			VSync:     true,
			Resizable: true,
		},
		Scene: SceneConfig{
			Background: [4]float32{0.40, 0.14, 0.16, 1.0},
		},
		Keys: KeyConfig{
			Pause: ebiten.KeyEscape,
			Debug: ebiten.KeyF2,
			Left:  ebiten.KeyA,
			Right: ebiten.KeyD,
		},
		Player: PlayerConfig{
			Start:         [2]float64{400, 0},
			BodySize:      [2]float64{48, 128},
			BodyColor:     [4]float32{0.85, 0.85, 0.9, 1},
			Speed:         300,
			Sprite:        "weapon/pistol.sprite",
			SpriteScale:   4,
			ArmOffset:     [2]float64{0, -74},
			ArmOrigin:     [2]float64{1.5, 7.5},
			FrameInterval: 0.15,
		},
		Level: LevelConfig{
			GroundSize:  [2]float64{800, 400},
			GroundColor: [4]float32{0.22, 0.2, 0.2, 1},
			Projection:  "planar",
			Scale:       1,
			Zoom:        17,
			TileSize:    256,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
