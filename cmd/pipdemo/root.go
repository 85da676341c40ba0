package main

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/depeter/pipdemo/assets/icon"
	"github.com/depeter/pipdemo/internal/app"
	"github.com/depeter/pipdemo/internal/cache"
	"github.com/depeter/pipdemo/internal/config"
	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/logging"
	"github.com/depeter/pipdemo/internal/pip"
	"github.com/depeter/pipdemo/internal/player"
	"github.com/depeter/pipdemo/internal/ui"
)

type flags struct {
	config      string
	background  string
	noPiP       bool
	logLevel    string
	fullscreen  bool
	writeConfig bool
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "pipdemo [flags] <video>",
		Short:         "Play a video in a page-embedded player that can float as picture-in-picture",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(fs, f.config)
			if err != nil {
				return err
			}
			applyFlags(cmd, cfg, f)

			if f.writeConfig {
				if path == "" {
					return errors.New("write config: no config path, pass --config")
				}
				if err := cfg.SaveTo(fs, path); err != nil {
					return fmt.Errorf("write config: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			source := cfg.Playback.Source
			if len(args) > 0 {
				source = args[0]
			}
			if source == "" {
				return errors.New("no video given: pass a path or set playback.source")
			}
			return run(fs, cfg, source)
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "config file (default $XDG_CONFIG_HOME/pipdemo/config.toml)")
	cmd.Flags().StringVar(&f.background, "background", "", "image shown under the player")
	cmd.Flags().BoolVar(&f.noPiP, "no-pip", false, "disable picture-in-picture")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.fullscreen, "fullscreen", false, "start fullscreen")
	cmd.Flags().BoolVar(&f.writeConfig, "write-config", false, "write the effective config to the config file and exit")
	return cmd
}

// loadConfig reads the config at path, or at the default path when path
// is empty. It returns the path it read.
func loadConfig(fs afero.Fs, path string) (*config.Config, string, error) {
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			log.WithError(err).Debug("no config path, using defaults")
			return config.DefaultConfig(), "", nil
		}
		path = p
	}
	cfg, err := config.LoadFrom(fs, path)
	return cfg, path, err
}

// applyFlags overrides config values with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config, f flags) {
	changed := cmd.Flags().Changed
	if changed("background") {
		cfg.UI.Background = f.background
	}
	if changed("no-pip") {
		cfg.PiP.Enabled = !f.noPiP
	}
	if changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if changed("fullscreen") {
		cfg.UI.Fullscreen = f.fullscreen
	}
}

func run(fs afero.Fs, cfg *config.Config, source string) error {
	closer, err := logging.Setup(cfg.Log, fs)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()

	queue := event.NewQueue()
	clock := clockwork.NewRealClock()
	game := app.NewGame(cfg, queue)

	var engine *player.Engine
	game.Init = func() error {
		e, err := player.New(cfg, queue, clock)
		if err != nil {
			return err
		}
		engine = e

		wid, err := player.WindowHandle()
		if err != nil {
			return fmt.Errorf("window handle: %w", err)
		}
		if err := engine.SetWindowID(wid); err != nil {
			return fmt.Errorf("set window id: %w", err)
		}

		opts := ui.ShowcaseOptions{
			Config: cfg,
			Source: source,
			Canvas: image.Pt(game.Width, game.Height),
			Engine: engine,
			Queue:  queue,
			Clock:  clock,
		}
		if images, err := cache.NewImageCache(fs, cacheDir()); err != nil {
			log.WithError(err).Warn("image cache unavailable, no background")
		} else {
			opts.Images = images
		}
		provider := pip.NewProvider(cfg.PiP, pip.EbitenHost{}, engine)
		opts.PiP = provider
		game.PiP = provider

		game.Showcase = ui.NewShowcaseScreen(opts)
		game.Screens.Push(game.Showcase)
		log.WithField("source", source).Info("showcase ready")
		return nil
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("PiP Demo")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	err = ebiten.RunGame(game)
	game.Shutdown()
	if engine != nil {
		engine.Destroy()
	}
	return err
}

func cacheDir() string {
	if dir, err := config.ConfigDir(); err == nil {
		return filepath.Join(dir, "cache", "images")
	}
	return filepath.Join(os.TempDir(), "pipdemo", "images")
}
