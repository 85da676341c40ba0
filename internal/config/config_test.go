package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestLoadFrom(t *testing.T) {
	Convey("LoadFrom", t, func() {
		fs := afero.NewMemMapFs()

		Convey("returns defaults when the file is missing", func() {
			cfg, err := LoadFrom(fs, "/cfg/config.toml")
			So(err, ShouldBeNil)
			So(cfg.Overlay.HideDelay.Duration, ShouldEqual, 5*time.Second)
			So(cfg.Overlay.TickInterval.Duration, ShouldEqual, time.Second)
			So(cfg.Overlay.ExternalRateResetsTimer, ShouldBeTrue)
			So(cfg.PiP.Enabled, ShouldBeTrue)
		})

		Convey("overrides defaults with file values", func() {
			data := `
[playback]
source = "/videos/demo.mp4"

[overlay]
hide_delay = "3s"
external_rate_resets_timer = false

[pip]
enabled = false
`
			So(afero.WriteFile(fs, "/cfg/config.toml", []byte(data), 0o644), ShouldBeNil)
			cfg, err := LoadFrom(fs, "/cfg/config.toml")
			So(err, ShouldBeNil)
			So(cfg.Playback.Source, ShouldEqual, "/videos/demo.mp4")
			So(cfg.Overlay.HideDelay.Duration, ShouldEqual, 3*time.Second)
			So(cfg.Overlay.ExternalRateResetsTimer, ShouldBeFalse)
			So(cfg.PiP.Enabled, ShouldBeFalse)
			So(cfg.UI.Width, ShouldEqual, 540)
		})

		Convey("rejects a bad duration", func() {
			data := "[overlay]\nhide_delay = \"soon\"\n"
			So(afero.WriteFile(fs, "/cfg/config.toml", []byte(data), 0o644), ShouldBeNil)
			_, err := LoadFrom(fs, "/cfg/config.toml")
			So(err, ShouldNotBeNil)
		})

		Convey("repairs unusable values", func() {
			data := "[overlay]\nhide_delay = \"-1s\"\n[ui]\nwidth = 0\n"
			So(afero.WriteFile(fs, "/cfg/config.toml", []byte(data), 0o644), ShouldBeNil)
			cfg, err := LoadFrom(fs, "/cfg/config.toml")
			So(err, ShouldBeNil)
			So(cfg.Overlay.HideDelay.Duration, ShouldEqual, 5*time.Second)
			So(cfg.UI.Width, ShouldEqual, 540)
		})
	})
}

func TestSaveTo(t *testing.T) {
	Convey("SaveTo writes a file LoadFrom reads back", t, func() {
		fs := afero.NewMemMapFs()
		cfg := DefaultConfig()
		cfg.Playback.Source = "/videos/clip.mov"
		cfg.Overlay.HideDelay = Duration{2 * time.Second}

		So(cfg.SaveTo(fs, "/a/b/config.toml"), ShouldBeNil)
		got, err := LoadFrom(fs, "/a/b/config.toml")
		So(err, ShouldBeNil)
		So(got.Playback.Source, ShouldEqual, "/videos/clip.mov")
		So(got.Overlay.HideDelay.Duration, ShouldEqual, 2*time.Second)
	})
}

func TestConfigDir(t *testing.T) {
	Convey("ConfigDir honours XDG_CONFIG_HOME", t, func() {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		dir, err := ConfigDir()
		So(err, ShouldBeNil)
		So(dir, ShouldEqual, "/tmp/xdg/pipdemo")
	})
}
