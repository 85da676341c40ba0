package player

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/gen2brain/go-mpv"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/depeter/pipdemo/internal/config"
	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/media"
)

// Engine wraps libmpv for single-item playback. Property changes arrive
// on the mpv event goroutine and reach subscribers through the UI queue.
type Engine struct {
	m     *mpv.Mpv
	queue event.Dispatcher
	clock clockwork.Clock

	mu       sync.Mutex
	loaded   bool
	paused   bool
	speed    float64
	duration float64
	position float64
	seekable bool
	eof      bool
	rate     float64 // last rate reported to subscribers

	rateFeed event.Feed[float64]
	endFeed  event.Feed[struct{}]
}

// New creates and initializes an mpv instance. queue receives every
// engine callback.
func New(cfg *config.Config, queue event.Dispatcher, clock clockwork.Clock) (*Engine, error) {
	m := mpv.New()

	// mpv owns the render pipeline; the app owns input and chrome
	must(m.SetOptionString("hwdec", cfg.Playback.HWAccel))
	must(m.SetOptionString("vo", "gpu"))
	must(m.SetOptionString("osc", "no"))
	must(m.SetOptionString("keep-open", "yes"))
	must(m.SetOptionString("idle", "yes"))
	must(m.SetOptionString("pause", "yes"))
	must(m.SetOptionString("input-cursor", "no"))
	must(m.SetOptionString("input-vo-keyboard", "no"))
	must(m.SetOptionString("cursor-autohide", "no"))
	must(m.SetOptionString("volume", fmt.Sprintf("%d", cfg.Playback.Volume)))

	if err := m.Initialize(); err != nil {
		return nil, fmt.Errorf("mpv init: %w", err)
	}

	e := &Engine{m: m, queue: queue, clock: clock, paused: true, speed: 1}

	must(m.ObserveProperty(0, "time-pos", mpv.FormatDouble))
	must(m.ObserveProperty(0, "duration", mpv.FormatDouble))
	must(m.ObserveProperty(0, "pause", mpv.FormatFlag))
	must(m.ObserveProperty(0, "speed", mpv.FormatDouble))
	must(m.ObserveProperty(0, "seekable", mpv.FormatFlag))
	must(m.ObserveProperty(0, "eof-reached", mpv.FormatFlag))

	go e.eventLoop()

	return e, nil
}

func must(err error) {
	if err != nil {
		log.WithError(err).Warn("mpv option")
	}
}

// SetWindowID sets the native window handle for embedded playback.
func (e *Engine) SetWindowID(wid int64) error {
	return e.m.SetOptionString("wid", fmt.Sprintf("%d", wid))
}

// SetVideoRegion confines the video to region inside a canvas-sized
// window. A region equal to the canvas removes the margins.
func (e *Engine) SetVideoRegion(region image.Rectangle, canvas image.Point) error {
	if canvas.X <= 0 || canvas.Y <= 0 {
		return fmt.Errorf("video region: empty canvas %v", canvas)
	}
	margins := [][2]string{
		{"video-margin-ratio-left", ratio(region.Min.X, canvas.X)},
		{"video-margin-ratio-right", ratio(canvas.X-region.Max.X, canvas.X)},
		{"video-margin-ratio-top", ratio(region.Min.Y, canvas.Y)},
		{"video-margin-ratio-bottom", ratio(canvas.Y-region.Max.Y, canvas.Y)},
	}
	for _, kv := range margins {
		if err := e.m.SetPropertyString(kv[0], kv[1]); err != nil {
			return fmt.Errorf("set %s: %w", kv[0], err)
		}
	}
	return nil
}

func ratio(n, d int) string {
	v := float64(n) / float64(d)
	if v < 0 {
		v = 0
	}
	return fmt.Sprintf("%.4f", v)
}

// Load replaces the current item with source, paused.
func (e *Engine) Load(source string) error {
	e.mu.Lock()
	e.loaded = true
	e.eof = false
	e.mu.Unlock()
	if err := e.m.SetPropertyString("pause", "yes"); err != nil {
		return fmt.Errorf("pause before load: %w", err)
	}
	if err := e.m.Command([]string{"loadfile", source, "replace"}); err != nil {
		e.mu.Lock()
		e.loaded = false
		e.mu.Unlock()
		return fmt.Errorf("loadfile %s: %w", source, err)
	}
	return nil
}

func (e *Engine) Play() error {
	return e.m.SetPropertyString("pause", "no")
}

func (e *Engine) Pause() error {
	return e.m.SetPropertyString("pause", "yes")
}

// SeekTo seeks to an absolute position.
func (e *Engine) SeekTo(pos time.Duration) error {
	return e.m.Command([]string{"seek", fmt.Sprintf("%.3f", pos.Seconds()), "absolute"})
}

// Rate is 0 while paused or idle, otherwise the playback speed.
func (e *Engine) Rate() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentRate()
}

func (e *Engine) currentRate() float64 {
	if !e.loaded || e.paused {
		return 0
	}
	return e.speed
}

// Position returns the current playback position.
func (e *Engine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return seconds(e.position)
}

// Duration returns the item duration, 0 while unknown.
func (e *Engine) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return seconds(e.duration)
}

// SeekableRanges returns the whole item while mpv reports it seekable.
func (e *Engine) SeekableRanges() []media.TimeRange {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded || !e.seekable || e.duration <= 0 {
		return nil
	}
	return []media.TimeRange{{Start: 0, Duration: seconds(e.duration)}}
}

// DetachItem stops playback and clears the playlist.
func (e *Engine) DetachItem() error {
	e.mu.Lock()
	e.loaded = false
	e.mu.Unlock()
	if err := e.m.Command([]string{"stop"}); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return e.m.Command([]string{"playlist-clear"})
}

func (e *Engine) OnRateChange(fn func(rate float64)) *event.Subscription {
	return e.rateFeed.Subscribe(fn)
}

func (e *Engine) OnItemEnd(fn func()) *event.Subscription {
	return e.endFeed.Subscribe(func(struct{}) { fn() })
}

// AddPeriodicTimeObserver ticks on its own goroutine and delivers the
// position through q.
func (e *Engine) AddPeriodicTimeObserver(interval time.Duration, q event.Dispatcher, fn func(pos time.Duration)) *event.Subscription {
	ticker := e.clock.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.Chan():
				pos := e.Position()
				q.Post(func() { fn(pos) })
			case <-done:
				return
			}
		}
	}()
	return event.NewSubscription(func() { close(done) })
}

// ActivateAudio names the audio stream after the category so the sound
// server can route it.
func (e *Engine) ActivateAudio(category string) error {
	return e.m.SetPropertyString("audio-client-name", "pipdemo-"+category)
}

// Destroy cleans up the mpv instance.
func (e *Engine) Destroy() {
	e.m.TerminateDestroy()
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func flagValue(v any) (bool, bool) {
	switch f := v.(type) {
	case bool:
		return f, true
	case int:
		return f == 1, true
	}
	return false, false
}

func (e *Engine) eventLoop() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	for {
		ev := e.m.WaitEvent(1.0)
		if ev == nil {
			continue
		}

		switch ev.EventID {
		case mpv.EventPropertyChange:
			if ev.Data == nil {
				continue
			}
			e.handleProperty(ev.Property())

		case mpv.EventShutdown:
			return
		}
	}
}

func (e *Engine) handleProperty(prop mpv.EventProperty) {
	e.mu.Lock()
	ended := false
	switch prop.Name {
	case "time-pos":
		if v, ok := prop.Data.(float64); ok {
			e.position = v
		}
	case "duration":
		if v, ok := prop.Data.(float64); ok {
			e.duration = v
		}
	case "speed":
		if v, ok := prop.Data.(float64); ok {
			e.speed = v
		}
	case "pause":
		if v, ok := flagValue(prop.Data); ok {
			e.paused = v
		}
	case "seekable":
		if v, ok := flagValue(prop.Data); ok {
			e.seekable = v
		}
	case "eof-reached":
		if v, ok := flagValue(prop.Data); ok {
			ended = v && !e.eof && e.loaded
			e.eof = v
		}
	}
	rate := e.currentRate()
	rateChanged := rate != e.rate
	e.rate = rate
	e.mu.Unlock()

	if ended {
		log.Debug("mpv end of item")
		e.queue.Post(func() { e.endFeed.Emit(struct{}{}) })
	}
	if rateChanged {
		e.queue.Post(func() { e.rateFeed.Emit(rate) })
	}
}
