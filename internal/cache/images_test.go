package cache

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"

	"github.com/depeter/pipdemo/internal/event"
)

func writePNG(fs afero.Fs, path string, w, h int) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	if err := afero.WriteFile(fs, path, buf.Bytes(), 0o644); err != nil {
		panic(err)
	}
}

func TestPrepare(t *testing.T) {
	Convey("Prepare", t, func() {
		fs := afero.NewMemMapFs()
		ic, err := NewImageCache(fs, "/cache")
		So(err, ShouldBeNil)
		writePNG(fs, "/img/bg.png", 200, 100)

		Convey("scales to the width and keeps the aspect ratio", func() {
			ov, err := ic.Prepare("/img/bg.png", 540)
			So(err, ShouldBeNil)
			So(ov.W, ShouldEqual, 540)
			So(ov.H, ShouldEqual, 270)
			data, err := afero.ReadFile(fs, ov.Path)
			So(err, ShouldBeNil)
			So(data, ShouldHaveLength, 540*270*4)
		})

		Convey("serves repeats from memory", func() {
			first, err := ic.Prepare("/img/bg.png", 100)
			So(err, ShouldBeNil)
			So(fs.Remove(first.Path), ShouldBeNil)
			second, err := ic.Prepare("/img/bg.png", 100)
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
		})

		Convey("drops the stale variant when the width changes", func() {
			narrow, err := ic.Prepare("/img/bg.png", 100)
			So(err, ShouldBeNil)
			wide, err := ic.Prepare("/img/bg.png", 200)
			So(err, ShouldBeNil)
			So(wide.Path, ShouldNotEqual, narrow.Path)

			files, err := afero.Glob(fs, "/cache/*.bgra")
			So(err, ShouldBeNil)
			So(files, ShouldResemble, []string{wide.Path})

			again, err := ic.Prepare("/img/bg.png", 100)
			So(err, ShouldBeNil)
			exists, err := afero.Exists(fs, again.Path)
			So(err, ShouldBeNil)
			So(exists, ShouldBeTrue)
		})

		Convey("keeps variants of other sources", func() {
			writePNG(fs, "/img/other.png", 50, 50)
			_, err := ic.Prepare("/img/bg.png", 100)
			So(err, ShouldBeNil)
			_, err = ic.Prepare("/img/other.png", 100)
			So(err, ShouldBeNil)
			files, err := afero.Glob(fs, "/cache/*.bgra")
			So(err, ShouldBeNil)
			So(files, ShouldHaveLength, 2)
		})

		Convey("fails for a missing file", func() {
			_, err := ic.Prepare("/img/nope.png", 100)
			So(err, ShouldNotBeNil)
		})

		Convey("fails for a file that is not an image", func() {
			So(afero.WriteFile(fs, "/img/bad.png", []byte("nope"), 0o644), ShouldBeNil)
			_, err := ic.Prepare("/img/bad.png", 100)
			So(err, ShouldNotBeNil)
		})

		Convey("rejects a zero width", func() {
			_, err := ic.Prepare("/img/bg.png", 0)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestPrepareAsync(t *testing.T) {
	Convey("PrepareAsync delivers through the queue", t, func() {
		fs := afero.NewMemMapFs()
		ic, err := NewImageCache(fs, "/cache")
		So(err, ShouldBeNil)
		writePNG(fs, "/img/bg.png", 10, 10)

		q := event.NewQueue()
		done := make(chan Overlay, 1)
		ic.PrepareAsync("/img/bg.png", 20, q, func(ov Overlay, err error) {
			if err == nil {
				done <- ov
			}
		})

		var got Overlay
		for got.W == 0 {
			q.Drain()
			select {
			case got = <-done:
			default:
			}
		}
		So(got.W, ShouldEqual, 20)
		So(got.H, ShouldEqual, 20)
	})
}

func TestScaleToWidth(t *testing.T) {
	Convey("ScaleToWidth never yields an empty image", t, func() {
		img := image.NewRGBA(image.Rect(0, 0, 1000, 1))
		So(ScaleToWidth(img, 10).Bounds().Dy(), ShouldEqual, 1)
	})
}
