package ui

import (
	"image"
	"time"

	"github.com/depeter/pipdemo/internal/cache"
	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/media"
	"github.com/depeter/pipdemo/internal/playerview"
)

type imageCall struct {
	id, x, y, w, h, crop int
	path                 string
}

type fakeEngine struct {
	plays, pauses int
	rate          float64
	detached      int

	regions []image.Rectangle
	osd     map[int]string
	images  []imageCall
	removed []int
	audio   []string

	rateFeed event.Feed[float64]
	endFeed  event.Feed[struct{}]
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{osd: map[int]string{}}
}

func (e *fakeEngine) Load(string) error { return nil }

func (e *fakeEngine) Play() error {
	e.plays++
	e.setRate(1)
	return nil
}

func (e *fakeEngine) Pause() error {
	e.pauses++
	e.setRate(0)
	return nil
}

func (e *fakeEngine) SeekTo(time.Duration) error { return nil }
func (e *fakeEngine) Rate() float64              { return e.rate }
func (e *fakeEngine) Duration() time.Duration    { return time.Minute }
func (e *fakeEngine) SeekableRanges() []media.TimeRange {
	return []media.TimeRange{{Duration: time.Minute}}
}

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

func (e *fakeEngine) AddPeriodicTimeObserver(time.Duration, event.Dispatcher, func(time.Duration)) *event.Subscription {
	return event.NewSubscription(func() {})
}

func (e *fakeEngine) ActivateAudio(category string) error {
	e.audio = append(e.audio, category)
	return nil
}

func (e *fakeEngine) SetOSDOverlay(id int, ass string, resX, resY int) error {
	e.osd[id] = ass
	return nil
}

func (e *fakeEngine) RemoveOSDOverlay(id int) error {
	delete(e.osd, id)
	return nil
}

func (e *fakeEngine) SetVideoRegion(region image.Rectangle, canvas image.Point) error {
	e.regions = append(e.regions, region)
	return nil
}

func (e *fakeEngine) AddImageOverlay(id, x, y int, path string, w, h, cropTop int) error {
	e.images = append(e.images, imageCall{id: id, x: x, y: y, w: w, h: h, crop: cropTop, path: path})
	return nil
}

func (e *fakeEngine) RemoveImageOverlay(id int) error {
	e.removed = append(e.removed, id)
	return nil
}

// setRate reports a rate change the way mpv does, only when it differs.
func (e *fakeEngine) setRate(r float64) {
	if r == e.rate {
		return
	}
	e.rate = r
	e.rateFeed.Emit(r)
}

func (e *fakeEngine) lastRegion() image.Rectangle {
	return e.regions[len(e.regions)-1]
}

type fakePiP struct {
	active     bool
	activeFeed event.Feed[bool]
	possible   event.Feed[bool]
	starts     int
}

func (p *fakePiP) Start() error   { p.starts++; return nil }
func (p *fakePiP) Stop() error    { return nil }
func (p *fakePiP) Possible() bool { return true }
func (p *fakePiP) Active() bool   { return p.active }
func (p *fakePiP) OnPossibleChange(fn func(bool)) *event.Subscription {
	return p.possible.Subscribe(fn)
}
func (p *fakePiP) OnActiveChange(fn func(bool)) *event.Subscription {
	return p.activeFeed.Subscribe(fn)
}

func (p *fakePiP) setActive(v bool) {
	p.active = v
	p.activeFeed.Emit(v)
}

type fakeProvider struct {
	ctr *fakePiP
}

func (p *fakeProvider) Supported() bool { return true }

func (p *fakeProvider) NewController() (playerview.PiP, error) {
	return p.ctr, nil
}

type fakeLoader struct {
	requests []int
	result   cache.Overlay
	err      error
}

func (l *fakeLoader) PrepareAsync(src string, width int, q event.Dispatcher, callback func(cache.Overlay, error)) {
	l.requests = append(l.requests, width)
	q.Post(func() { callback(l.result, l.err) })
}
