// Package playerview binds one video source to a player region and its
// control chrome, and keeps the chrome in step with the engine and the
// PiP controller.
//
// All methods must be called on the UI goroutine. Engine and PiP
// callbacks arrive there through the event queue, so nothing here locks.
package playerview

import (
	"errors"
	"image"
	"time"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/media"
	"github.com/depeter/pipdemo/internal/overlay"
)

// ErrClosed is returned by operations on a closed view.
var ErrClosed = errors.New("player view closed")

const (
	DefaultHideDelay    = 5 * time.Second
	DefaultTickInterval = time.Second

	// AudioCategoryPlayback is the audio session category claimed at
	// construction.
	AudioCategoryPlayback = "playback"
)

// Origin tells the resume reconciliation who asked for the change.
type Origin int

const (
	OriginUser Origin = iota
	OriginEngine
)

// Session is the playback session of one view.
type Session struct {
	Source string
	Loaded bool
}

// Options configures a PlayerView.
type Options struct {
	Region image.Rectangle
	Source string

	Engine     Engine
	NewOverlay OverlayFactory
	PiP        PiPProvider // nil means unsupported
	Audio      AudioSession
	Queue      event.Dispatcher
	Clock      clockwork.Clock

	HideDelay    time.Duration
	TickInterval time.Duration
	// ExternalRateResetsTimer lets engine-originated reconciliation
	// manage the auto-hide timer the same way the resume button does.
	ExternalRateResetsTimer bool
}

// PlayerView is the player region controller.
type PlayerView struct {
	session Session
	engine  Engine
	overlay Overlay
	pip     PiP
	timer   *InactivityTimer

	state      overlay.State
	reachedEnd bool
	closed     bool

	externalResetsTimer bool

	rateSub     *event.Subscription
	endSub      *event.Subscription
	timeSub     *event.Subscription
	possibleSub *event.Subscription
	activeSub   *event.Subscription
}

// New creates the view, loads the source paused and wires every
// observer. The source is handed to the engine unvalidated.
func New(opts Options) *PlayerView {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Queue == nil {
		opts.Queue = event.Immediate{}
	}
	if opts.HideDelay <= 0 {
		opts.HideDelay = DefaultHideDelay
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	v := &PlayerView{
		session:             Session{Source: opts.Source},
		engine:              opts.Engine,
		externalResetsTimer: opts.ExternalRateResetsTimer,
		state:               overlay.State{ChromeVisible: true},
	}
	v.timer = NewInactivityTimer(opts.Clock, opts.HideDelay, v.onInactivity)

	pipSupported := opts.PiP != nil && opts.PiP.Supported()
	v.overlay = opts.NewOverlay(opts.Region.Size(), pipSupported)

	if err := v.engine.Load(opts.Source); err != nil {
		log.WithError(err).WithField("source", opts.Source).Warn("load failed")
	} else {
		v.session.Loaded = true
	}

	v.endSub = v.engine.OnItemEnd(v.onPlayDidEnd)
	v.timeSub = v.engine.AddPeriodicTimeObserver(opts.TickInterval, opts.Queue, v.onTick)
	v.rateSub = v.engine.OnRateChange(func(float64) { v.reconcile() })

	if pipSupported {
		if opts.Audio != nil {
			if err := opts.Audio.ActivateAudio(AudioCategoryPlayback); err != nil {
				log.WithError(err).Debug("audio session activation failed")
			}
		}
		ctr, err := opts.PiP.NewController()
		if err != nil {
			log.WithError(err).Warn("pip controller unavailable")
		} else {
			v.pip = ctr
			v.possibleSub = ctr.OnPossibleChange(func(bool) { v.reconcile() })
			v.activeSub = ctr.OnActiveChange(func(bool) { v.reconcile() })
		}
	}

	v.push()
	return v
}

// ToggleResume is the resume/pause button action.
func (v *PlayerView) ToggleResume() error {
	if v.closed {
		return ErrClosed
	}
	v.setResume(!v.state.ResumeSelected, OriginUser)
	return nil
}

// TogglePiP is the PiP button action.
func (v *PlayerView) TogglePiP() error {
	if v.closed {
		return ErrClosed
	}
	v.timer.Start()
	if v.pip == nil {
		return nil
	}

	var err error
	if v.pip.Active() {
		v.state.PiPSelected = false
		err = v.pip.Stop()
	} else {
		v.state.PiPSelected = true
		err = v.pip.Start()
	}
	if err != nil {
		log.WithError(err).Warn("pip request failed")
		v.state.PiPSelected = v.pip.Active()
	}
	v.push()
	return nil
}

// AdmitTap reports whether a tap at a region-local point reaches the
// generic tap handler.
func (v *PlayerView) AdmitTap(p image.Point) bool {
	if v.state.ChromeVisible && v.overlay.IsExcluded(p) {
		return false
	}
	return true
}

// Tap handles a tap at a region-local point outside the buttons. It
// returns false when the tap was not admitted.
func (v *PlayerView) Tap(p image.Point) bool {
	if v.closed || !v.AdmitTap(p) {
		return false
	}
	v.state.ChromeVisible = !v.state.ChromeVisible
	if v.state.ChromeVisible {
		v.timer.Start()
	}
	v.push()
	return true
}

// Update polls the inactivity timer. Call once per UI frame.
func (v *PlayerView) Update() {
	if v.closed {
		return
	}
	v.timer.Poll()
}

// Close cancels the timer, drops every observer and detaches the item.
// Later calls do nothing.
func (v *PlayerView) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.timer.Stop()

	if v.pip != nil {
		v.possibleSub.Cancel()
		v.activeSub.Cancel()
		v.possibleSub, v.activeSub = nil, nil
	}
	if v.endSub != nil {
		v.endSub.Cancel()
		v.endSub = nil
	}
	if v.rateSub != nil {
		v.rateSub.Cancel()
		v.rateSub = nil
	}
	if v.timeSub != nil {
		v.timeSub.Cancel()
		v.timeSub = nil
	}
	if err := v.engine.DetachItem(); err != nil {
		log.WithError(err).Debug("detach item failed")
	}
	v.session.Loaded = false
}

// setResume is the single writer of the resume flag. Both the button and
// observed engine state go through it.
func (v *PlayerView) setResume(selected bool, origin Origin) {
	manageTimer := origin == OriginUser || v.externalResetsTimer

	if manageTimer {
		v.timer.Stop()
		v.state.ChromeVisible = true
	}

	v.state.ResumeSelected = selected
	if selected {
		if v.reachedEnd {
			v.reachedEnd = false
			if err := v.engine.SeekTo(0); err != nil {
				log.WithError(err).Warn("seek to start failed")
			}
		}
		if err := v.engine.Play(); err != nil {
			log.WithError(err).Warn("play failed")
		}
		if manageTimer {
			v.timer.Start()
		}
	} else {
		if err := v.engine.Pause(); err != nil {
			log.WithError(err).Warn("pause failed")
		}
	}
	v.push()
}

// reconcile aligns the chrome with observed engine and PiP state.
func (v *PlayerView) reconcile() {
	if v.closed {
		return
	}
	if playing := v.engine.Rate() > 0; playing != v.state.ResumeSelected {
		v.setResume(playing, OriginEngine)
	}

	if v.pip == nil || !v.overlay.HasPiPButton() {
		return
	}
	v.state.PiPEnabled = v.pip.Possible()
	v.state.PiPSelected = v.pip.Active()
	v.push()
}

func (v *PlayerView) onTick(pos time.Duration) {
	if v.closed {
		return
	}
	v.state.Progress = media.Progress(pos, v.engine.Duration(), v.engine.SeekableRanges())
	v.push()
}

func (v *PlayerView) onPlayDidEnd() {
	if v.closed {
		return
	}
	v.reachedEnd = true
	v.state.ResumeSelected = false
	v.timer.Stop()
	v.state.ChromeVisible = true
	v.push()
}

func (v *PlayerView) onInactivity() {
	v.state.ChromeVisible = false
	v.push()
}

func (v *PlayerView) push() {
	v.overlay.Apply(v.state)
}
