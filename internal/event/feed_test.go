package event

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFeed(t *testing.T) {
	Convey("Feed", t, func() {
		var f Feed[int]
		var got []int

		Convey("delivers to subscribers in registration order", func() {
			f.Subscribe(func(v int) { got = append(got, v) })
			f.Subscribe(func(v int) { got = append(got, v*10) })
			f.Emit(2)
			So(got, ShouldResemble, []int{2, 20})
		})

		Convey("stops delivering after Cancel", func() {
			sub := f.Subscribe(func(v int) { got = append(got, v) })
			f.Emit(1)
			sub.Cancel()
			f.Emit(2)
			So(got, ShouldResemble, []int{1})
			So(f.Len(), ShouldEqual, 0)
		})

		Convey("tolerates repeated and nil Cancel", func() {
			sub := f.Subscribe(func(int) {})
			sub.Cancel()
			So(func() { sub.Cancel() }, ShouldNotPanic)
			var none *Subscription
			So(func() { none.Cancel() }, ShouldNotPanic)
		})

		Convey("lets a subscriber cancel itself mid-emit", func() {
			var sub *Subscription
			sub = f.Subscribe(func(v int) {
				got = append(got, v)
				sub.Cancel()
			})
			f.Emit(1)
			f.Emit(2)
			So(got, ShouldResemble, []int{1})
		})
	})
}

func TestQueue(t *testing.T) {
	Convey("Queue", t, func() {
		q := NewQueue()
		var order []string

		Convey("runs posted funcs in order on Drain", func() {
			q.Post(func() { order = append(order, "a") })
			q.Post(func() { order = append(order, "b") })
			So(q.Len(), ShouldEqual, 2)
			So(order, ShouldBeEmpty)
			So(q.Drain(), ShouldEqual, 2)
			So(order, ShouldResemble, []string{"a", "b"})
			So(q.Len(), ShouldEqual, 0)
		})

		Convey("defers funcs posted during a drain", func() {
			q.Post(func() {
				order = append(order, "first")
				q.Post(func() { order = append(order, "second") })
			})
			q.Drain()
			So(order, ShouldResemble, []string{"first"})
			q.Drain()
			So(order, ShouldResemble, []string{"first", "second"})
		})

		Convey("ignores nil funcs", func() {
			q.Post(nil)
			So(q.Len(), ShouldEqual, 0)
		})
	})

	Convey("Immediate runs synchronously", t, func() {
		ran := false
		Immediate{}.Post(func() { ran = true })
		So(ran, ShouldBeTrue)
	})
}
