package playerview

import (
	"image"
	"time"

	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/media"
	"github.com/depeter/pipdemo/internal/overlay"
)

type fakeEngine struct {
	calls    []string
	rate     float64
	duration time.Duration
	seekable []media.TimeRange
	loadErr  error

	rateFeed event.Feed[float64]
	endFeed  event.Feed[struct{}]
	timeFeed event.Feed[time.Duration]
	interval time.Duration
	detached int
}

func (e *fakeEngine) Load(source string) error {
	e.calls = append(e.calls, "load")
	return e.loadErr
}

func (e *fakeEngine) Play() error {
	e.calls = append(e.calls, "play")
	return nil
}

func (e *fakeEngine) Pause() error {
	e.calls = append(e.calls, "pause")
	return nil
}

func (e *fakeEngine) SeekTo(pos time.Duration) error {
	e.calls = append(e.calls, "seek:"+pos.String())
	return nil
}

func (e *fakeEngine) Rate() float64                     { return e.rate }
func (e *fakeEngine) Duration() time.Duration           { return e.duration }
func (e *fakeEngine) SeekableRanges() []media.TimeRange { return e.seekable }

func (e *fakeEngine) DetachItem() error {
	e.detached++
	return nil
}

func (e *fakeEngine) OnRateChange(fn func(float64)) *event.Subscription {
	return e.rateFeed.Subscribe(fn)
}

func (e *fakeEngine) OnItemEnd(fn func()) *event.Subscription {
	return e.endFeed.Subscribe(func(struct{}) { fn() })
}

func (e *fakeEngine) AddPeriodicTimeObserver(interval time.Duration, q event.Dispatcher, fn func(time.Duration)) *event.Subscription {
	e.interval = interval
	return e.timeFeed.Subscribe(func(pos time.Duration) {
		q.Post(func() { fn(pos) })
	})
}

// setRate simulates the engine changing rate on its own.
func (e *fakeEngine) setRate(r float64) {
	e.rate = r
	e.rateFeed.Emit(r)
}

func (e *fakeEngine) count(call string) int {
	n := 0
	for _, c := range e.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakePiP struct {
	possible bool
	active   bool
	starts   int
	stops    int
	startErr error

	possibleFeed event.Feed[bool]
	activeFeed   event.Feed[bool]
}

func (p *fakePiP) Start() error {
	p.starts++
	return p.startErr
}

func (p *fakePiP) Stop() error {
	p.stops++
	return nil
}

func (p *fakePiP) Possible() bool { return p.possible }
func (p *fakePiP) Active() bool   { return p.active }

func (p *fakePiP) OnPossibleChange(fn func(bool)) *event.Subscription {
	return p.possibleFeed.Subscribe(fn)
}

func (p *fakePiP) OnActiveChange(fn func(bool)) *event.Subscription {
	return p.activeFeed.Subscribe(fn)
}

func (p *fakePiP) setActive(v bool) {
	p.active = v
	p.activeFeed.Emit(v)
}

func (p *fakePiP) setPossible(v bool) {
	p.possible = v
	p.possibleFeed.Emit(v)
}

type fakeProvider struct {
	supported bool
	ctr       *fakePiP
	created   int
}

func (f *fakeProvider) Supported() bool { return f.supported }

func (f *fakeProvider) NewController() (PiP, error) {
	f.created++
	return f.ctr, nil
}

type fakeAudio struct {
	categories []string
	err        error
}

func (a *fakeAudio) ActivateAudio(category string) error {
	a.categories = append(a.categories, category)
	return a.err
}

type fakeOverlay struct {
	size    image.Point
	withPiP bool
	applied []overlay.State
	dim     image.Rectangle
}

func (o *fakeOverlay) Apply(s overlay.State) { o.applied = append(o.applied, s) }

func (o *fakeOverlay) IsExcluded(p image.Point) bool {
	return len(o.applied) > 0 && o.applied[len(o.applied)-1].ChromeVisible && p.In(o.dim)
}

func (o *fakeOverlay) HasPiPButton() bool { return o.withPiP }

func (o *fakeOverlay) last() overlay.State {
	if len(o.applied) == 0 {
		return overlay.State{}
	}
	return o.applied[len(o.applied)-1]
}
