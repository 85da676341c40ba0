package media

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestProgress(t *testing.T) {
	Convey("Progress", t, func() {
		full := []TimeRange{{Start: 0, Duration: 60 * time.Second}}

		Convey("is the position ratio with a seekable range and duration", func() {
			So(Progress(30*time.Second, 60*time.Second, full), ShouldEqual, 0.5)
		})
		Convey("is zero with zero duration", func() {
			So(Progress(30*time.Second, 0, full), ShouldEqual, 0.0)
		})
		Convey("is zero with no seekable ranges", func() {
			So(Progress(30*time.Second, 60*time.Second, nil), ShouldEqual, 0.0)
		})
	})
}

func TestTimeRange(t *testing.T) {
	Convey("TimeRange", t, func() {
		r := TimeRange{Start: 10 * time.Second, Duration: 5 * time.Second}
		So(r.End(), ShouldEqual, 15*time.Second)
		So(r.Contains(10*time.Second), ShouldBeTrue)
		So(r.Contains(15*time.Second), ShouldBeFalse)
		So(r.Empty(), ShouldBeFalse)
		So(TimeRange{}.Empty(), ShouldBeTrue)
		So(r.String(), ShouldEqual, "[10s, 15s)")
	})
}
