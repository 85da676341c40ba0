package icon

import (
	"image"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Generate returns the window icon sizes", t, func() {
		icons := Generate()
		So(icons, ShouldHaveLength, 2)
		So(icons[0].Bounds(), ShouldResemble, image.Rect(0, 0, 64, 64))
		So(icons[1].Bounds(), ShouldResemble, image.Rect(0, 0, 32, 32))

		Convey("the mini window carries the accent colour", func() {
			r, g, b, _ := icons[0].At(45, 42).RGBA()
			So(uint8(r>>8), ShouldEqual, accent.R)
			So(uint8(g>>8), ShouldEqual, accent.G)
			So(uint8(b>>8), ShouldEqual, accent.B)
		})

		Convey("the corners stay transparent", func() {
			_, _, _, a := icons[0].At(0, 0).RGBA()
			So(a, ShouldEqual, uint32(0))
		})
	})
}
