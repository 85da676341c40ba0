package logging

import (
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"

	"github.com/depeter/pipdemo/internal/config"
)

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		defer log.SetOutput(os.Stderr)
		defer log.SetLevel(log.InfoLevel)
		fs := afero.NewMemMapFs()

		Convey("parses the level", func() {
			_, err := Setup(config.LogConfig{Level: "debug"}, fs)
			So(err, ShouldBeNil)
			So(log.GetLevel(), ShouldEqual, log.DebugLevel)
		})

		Convey("falls back to info for a bad level", func() {
			_, err := Setup(config.LogConfig{Level: "chatty"}, fs)
			So(err, ShouldBeNil)
			So(log.GetLevel(), ShouldEqual, log.InfoLevel)
		})

		Convey("writes JSON lines to the log file", func() {
			closer, err := Setup(config.LogConfig{Level: "info", JSON: true, File: "/logs/pipdemo.log"}, fs)
			So(err, ShouldBeNil)
			log.WithField("k", "v").Info("hello")
			So(closer.Close(), ShouldBeNil)

			data, err := afero.ReadFile(fs, "/logs/pipdemo.log")
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"msg":"hello"`)
			So(string(data), ShouldContainSubstring, `"k":"v"`)
		})
	})
}
