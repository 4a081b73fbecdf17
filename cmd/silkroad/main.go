// Silkroad is an educational trading game set on the historical Silk Road.
//
// Usage:
//
//	silkroad [flags]
//
// Settings are read from the YAML config file (see internal/config); flags
// override the file.
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/silkroad-game/silkroad/assets"
	"github.com/silkroad-game/silkroad/internal/config"
	"github.com/silkroad-game/silkroad/internal/game"
	"github.com/silkroad-game/silkroad/internal/input"
	"github.com/silkroad-game/silkroad/internal/logging"
	"github.com/silkroad-game/silkroad/internal/render"
	"github.com/silkroad-game/silkroad/internal/ui"
	"github.com/silkroad-game/silkroad/internal/world"
)

var (
	configPath string
	logLevel   string
	worldPath  string
	fullscreen bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "silkroad",
	Short: "The Silk Road trading game",
	Long: `An educational trading game set on the Silk Road.

Pick a merchant, buy goods cheaply near home and sell them dear along
the route. Use the arrow keys (or WASD) to choose and Enter to confirm.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default is the user config directory)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+")")
	rootCmd.Flags().StringVar(&worldPath, "world", "", "world YAML replacing the bundled one")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("world") {
		cfg.World = worldPath
	}
	if cmd.Flags().Changed("fullscreen") {
		cfg.Window.Fullscreen = fullscreen
	}

	if err := logging.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	defer logging.Sync()

	w, err := loadWorld(cfg.World)
	if err != nil {
		return err
	}
	scroll, err := loadImage(cfg.Assets.Scroll, render.NewScrollBackdrop)
	if err != nil {
		return err
	}
	mapImage, err := loadImage(cfg.Assets.Map, render.NewMapBackdrop)
	if err != nil {
		return err
	}

	surface := render.NewEbitenSurface(cfg.Window.Width, cfg.Window.Height, cfg.Fonts.Title, cfg.Fonts.Body)
	screen := render.NewScreen(surface, scroll, render.DefaultMetrics())
	state := input.NewInputState()
	poller := input.NewPoller(state)

	settings := ui.DefaultSettings()
	settings.ColumnBreak = cfg.Menu.ColumnBreak
	settings.Pointer = cfg.Menu.Pointer
	settings.Caret = cfg.Menu.Caret
	ctrl := ui.NewController(screen, poller, settings)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(cfg.Window.TPS)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app := &App{
		surface: surface,
		source:  input.NewEbitenSource(),
		state:   state,
		poller:  poller,
		done:    make(chan error, 1),
	}
	flow := game.New(ctrl, w, mapImage, cfg.Game)
	go func() {
		app.done <- flow.Run(ctx)
	}()

	logging.Info("starting", zap.String("world", w.Title), zap.Int("tps", cfg.Window.TPS))
	err = ebiten.RunGame(app)
	cancel()
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// App is the Ebitengine game. Update feeds input to the poller and applies
// queued drawing; the game flow itself runs on its own goroutine.
type App struct {
	surface *render.EbitenSurface
	source  *input.EbitenSource
	state   *input.InputState
	poller  *input.Poller
	done    chan error
}

func (a *App) Update() error {
	select {
	case err := <-a.done:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error("game flow stopped", zap.Error(err))
			return err
		}
		return ebiten.Termination
	default:
	}

	a.source.Poll(a.state)
	a.poller.Tick()
	a.surface.Flush()
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.surface.Present(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.surface.Size()
	return int(w), int(h)
}

func loadWorld(path string) (*world.World, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.Data.ReadFile(assets.WorldFile)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}
	return world.LoadWorld(data)
}

// loadImage loads path, or generates the fallback when path is empty.
func loadImage(path string, fallback func() *image.NRGBA) (image.Image, error) {
	if path == "" {
		return fallback(), nil
	}
	return render.LoadImage(path)
}
