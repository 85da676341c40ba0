package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

type Config struct {
	Playback PlaybackConfig `toml:"playback"`
	UI       UIConfig       `toml:"ui"`
	Overlay  OverlayConfig  `toml:"overlay"`
	PiP      PiPConfig      `toml:"pip"`
	Keybinds KeybindConfig  `toml:"keybinds"`
	Log      LogConfig      `toml:"log"`
}

type PlaybackConfig struct {
	HWAccel string `toml:"hwdec"`
	Volume  int    `toml:"volume"`
	Source  string `toml:"source"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	TopMargin  int    `toml:"top_margin"`
	Background string `toml:"background"`
}

type OverlayConfig struct {
	HideDelay    Duration `toml:"hide_delay"`
	TickInterval Duration `toml:"tick_interval"`
	// ExternalRateResetsTimer keeps the auto-hide timer coupled to
	// rate changes that did not come from the resume button.
	ExternalRateResetsTimer bool `toml:"external_rate_resets_timer"`
}

type PiPConfig struct {
	Enabled bool `toml:"enabled"`
	Width   int  `toml:"width"`
	Height  int  `toml:"height"`
	Margin  int  `toml:"margin"`
}

type KeybindConfig struct {
	PlayPause  string `toml:"play_pause"`
	PiP        string `toml:"pip"`
	Fullscreen string `toml:"fullscreen"`
	Quit       string `toml:"quit"`
}

type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
	File  string `toml:"file"`
}

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func DefaultConfig() *Config {
	return &Config{
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Volume:  100,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      540,
			Height:     960,
			TopMargin:  88,
		},
		Overlay: OverlayConfig{
			HideDelay:               Duration{5 * time.Second},
			TickInterval:            Duration{time.Second},
			ExternalRateResetsTimer: true,
		},
		PiP: PiPConfig{
			Enabled: true,
			Width:   384,
			Height:  216,
			Margin:  24,
		},
		Keybinds: KeybindConfig{
			PlayPause:  "Space",
			PiP:        "P",
			Fullscreen: "F",
			Quit:       "Q",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate replaces unusable values with defaults.
func (c *Config) Validate() {
	def := DefaultConfig()
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		c.UI.Width, c.UI.Height = def.UI.Width, def.UI.Height
	}
	if c.UI.TopMargin < 0 || c.UI.TopMargin >= c.UI.Height {
		c.UI.TopMargin = 0
	}
	if c.Overlay.HideDelay.Duration <= 0 {
		c.Overlay.HideDelay = def.Overlay.HideDelay
	}
	if c.Overlay.TickInterval.Duration <= 0 {
		c.Overlay.TickInterval = def.Overlay.TickInterval
	}
	if c.PiP.Width <= 0 || c.PiP.Height <= 0 {
		c.PiP.Width, c.PiP.Height = def.PiP.Width, def.PiP.Height
	}
	if c.PiP.Margin < 0 {
		c.PiP.Margin = def.PiP.Margin
	}
	if c.Playback.Volume < 0 || c.Playback.Volume > 150 {
		c.Playback.Volume = def.Playback.Volume
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pipdemo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadFrom reads the config at path on fs. A missing file yields the
// defaults.
func LoadFrom(fs afero.Fs, path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Validate()
	return cfg, nil
}

// SaveTo writes the config as TOML, creating parent directories.
func (c *Config) SaveTo(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
