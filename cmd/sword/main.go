package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/vertices/config"
	"github.com/plus3/vertices/demo"
	"github.com/plus3/vertices/input"
	"github.com/plus3/vertices/overlay"
	overlayebiten "github.com/plus3/vertices/overlay/ebiten"
	"github.com/plus3/vertices/render"
	"github.com/spf13/cobra"
)

var (
	configFile string
	width      int
	height     int
	title      string
	noOverlay  bool
	headless   time.Duration
	hold       []string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "sword",
		Short:        "interactive 3D sword vertex demo",
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.IntVar(&width, "width", 0, "window width (overrides config)")
	flags.IntVar(&height, "height", 0, "window height (overrides config)")
	flags.StringVar(&title, "title", "", "window title (overrides config)")
	flags.BoolVar(&noOverlay, "no-overlay", false, "disable the console and FPS overlay")
	flags.DurationVar(&headless, "headless", 0, "run without a window for this long and log the final transform")
	flags.StringSliceVar(&hold, "hold", nil, "actions held during a headless run, e.g. rotate_left,move_up")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Error("configuration failed", "err", err)
		return err
	}

	if headless > 0 {
		return runHeadless(cmd.Context(), cfg, logger)
	}
	return runWindow(cfg, logger)
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		slog.Info("loaded config", "path", configFile)
	}

	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
	if cmd.Flags().Changed("title") {
		cfg.Window.Title = title
	}
	if noOverlay {
		cfg.Overlay = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWindow(cfg *config.Config, logger *slog.Logger) error {
	game := &Game{logger: logger}

	if cfg.Overlay {
		game.backend = overlayebiten.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	app, err := demo.New(demo.Options{
		Config:   cfg,
		Source:   &input.EbitenSource{},
		Logger:   logger,
		Overlay:  game.backend != nil,
		Renderer: render.NewRenderer(cfg.ClearRGBA()),
		Timer:    overlay.NewFrameTimer(),
	})
	if err != nil {
		return err
	}
	game.app = app

	logger.Info("starting",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"tps", cfg.Window.TPS,
		"overlay", cfg.Overlay)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	logStats(logger, app)
	return nil
}

func runHeadless(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	keymap, err := cfg.Keymap()
	if err != nil {
		return err
	}

	var actions []input.Action
	for _, name := range hold {
		a, err := input.ParseAction(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		actions = append(actions, a)
	}

	app, err := demo.New(demo.Options{
		Config: cfg,
		Source: input.NewScriptedSource(keymap, actions...),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, headless)
	defer cancel()

	logger.Info("headless run", "duration", headless, "hold", hold)
	app.Update.Run(ctx, time.Second/time.Duration(cfg.Window.TPS))

	state := app.State()
	logger.Info("final transform",
		"scale", state.Scale,
		"rotation_x", state.RotationX,
		"rotation_y", state.RotationY,
		"orbit_x", state.OrbitX,
		"orbit_y", state.OrbitY,
		"translation", state.Translation)
	logStats(logger, app)
	return nil
}

func logStats(logger *slog.Logger, app *demo.App) {
	for _, sys := range app.Update.Stats().Systems {
		logger.Debug("system stats",
			"system", sys.Name,
			"executions", sys.ExecutionCount,
			"avg", sys.AvgDuration,
			"max", sys.MaxDuration)
	}
}
