// skyfall is a small 2D side-view shooter built on Ebitengine.
//
// Usage:
//
//	skyfall [flags]
//
// Flags:
//
//	--config <path>     - Config file (default: ~/.skyfall/config.yaml, then ./configs/skyfall.yaml)
//	--width <px>        - Window width
//	--height <px>       - Window height
//	--level <path>      - ESRI shapefile with the level geometry
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/skyfall/assets"
	"github.com/OpticalFlyer/skyfall/config"
	"github.com/OpticalFlyer/skyfall/level"
	"github.com/OpticalFlyer/skyfall/proj"
	"github.com/OpticalFlyer/skyfall/render"
	"github.com/OpticalFlyer/skyfall/shapes"
	"github.com/OpticalFlyer/skyfall/sprite"
)

var (
	flagConfig   string
	flagWidth    int
	flagHeight   int
	flagLevel    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyfall",
	Short: "SkyFall - a 2D side-view shooter",
	Long: `SkyFall opens a window with the player standing on the level ground.

Controls:
  A / D, arrows  - Walk
  Mouse          - Aim
  Escape         - Pause menu
  F2             - Debug overlay

Examples:
  skyfall
  skyfall --width 1280 --height 720
  skyfall --level levels/cave.shp --log-level debug`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "Window width (overrides config)")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "Window height (overrides config)")
	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level shapefile (overrides config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, skipped, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	logger := newLogger(cfg.Log.Level)
	for _, err := range skipped {
		logger.Warn("skipped config file", "error", err)
	}

	sheet := loadSheet(cfg.Player.Sprite, logger)
	lvl, err := loadLevel(cfg.Level, logger)
	if err != nil {
		return err
	}

	game, err := newSkyFall(cfg, logger, sheet, lvl)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	logger.Info("starting", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Window.Height = flagHeight
	}
	if flags.Changed("level") {
		cfg.Level.Path = flagLevel
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyfall",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		return logger
	}
	logger.SetLevel(lvl)
	return logger
}

// loadSheet loads the arm sprite from the embedded assets. A broken or
// missing sprite is not fatal; the arm is drawn from a placeholder.
func loadSheet(name string, logger *log.Logger) *sprite.Sheet {
	sheet, err := sprite.Load(assets.FS, assets.Graphic(name))
	if err != nil {
		logger.Warn("using placeholder sprite", "sprite", name, "error", err)
		return sprite.Placeholder(4, 1, 12, 10)
	}
	logger.Debug("loaded sprite", "sprite", name, "columns", sheet.Columns(), "frame", sheet.FrameSize())
	return sheet
}

func loadLevel(cfg config.LevelConfig, logger *log.Logger) (*level.Level, error) {
	fill := render.Color(cfg.GroundColor)
	if cfg.Path == "" {
		return level.Default(shapes.Sz(cfg.GroundSize[0], cfg.GroundSize[1]), fill), nil
	}
	p, err := proj.New(proj.Options{
		Name:     cfg.Projection,
		Scale:    cfg.Scale,
		Zoom:     cfg.Zoom,
		TileSize: cfg.TileSize,
		Origin:   cfg.Origin,
	})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", cfg.Path, err)
	}
	lvl, err := level.Load(cfg.Path, fill, p)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded level", "path", cfg.Path, "projection", cfg.Projection,
		"polygons", lvl.Len(), "bounds", lvl.Bounds())
	return lvl, nil
}
