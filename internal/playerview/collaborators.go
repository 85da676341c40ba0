package playerview

import (
	"image"
	"time"

	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/media"
	"github.com/depeter/pipdemo/internal/overlay"
)

// Engine is the playback engine surface the view consumes. Every
// callback is delivered on the UI goroutine.
type Engine interface {
	Load(source string) error
	Play() error
	Pause() error
	SeekTo(pos time.Duration) error
	Rate() float64
	Duration() time.Duration
	SeekableRanges() []media.TimeRange
	DetachItem() error

	OnRateChange(fn func(rate float64)) *event.Subscription
	OnItemEnd(fn func()) *event.Subscription
	// AddPeriodicTimeObserver calls fn every interval with the current
	// position. The engine may tick on its own goroutine; fn runs via q.
	AddPeriodicTimeObserver(interval time.Duration, q event.Dispatcher, fn func(pos time.Duration)) *event.Subscription
}

// AudioSession is implemented by engines that can claim a platform audio
// category. Activation is best effort.
type AudioSession interface {
	ActivateAudio(category string) error
}

// PiP is a Picture-in-Picture controller. Start and Stop are requests;
// the resulting state arrives through the change feeds.
type PiP interface {
	Start() error
	Stop() error
	Possible() bool
	Active() bool
	OnPossibleChange(fn func(bool)) *event.Subscription
	OnActiveChange(fn func(bool)) *event.Subscription
}

// PiPProvider is the platform support query plus the controller
// constructor.
type PiPProvider interface {
	Supported() bool
	NewController() (PiP, error)
}

// Overlay is the control chrome. The view owns the state; the overlay
// only renders it and answers hit-test questions.
type Overlay interface {
	Apply(s overlay.State)
	IsExcluded(p image.Point) bool
	HasPiPButton() bool
}

// OverlayFactory builds an overlay of the given size, with or without a
// PiP button.
type OverlayFactory func(size image.Point, withPiP bool) Overlay
