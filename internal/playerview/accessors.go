package playerview

import (
	"fmt"

	"github.com/depeter/pipdemo/internal/overlay"
)

// Playback is the transport half of the view state.
type Playback int

const (
	Paused Playback = iota
	Playing
	Ended
)

func (p Playback) String() string {
	switch p {
	case Playing:
		return "Playing"
	case Ended:
		return "Ended"
	default:
		return "Paused"
	}
}

// Phase is the combined transport × chrome state.
type Phase struct {
	Playback      Playback
	ChromeVisible bool
}

func (p Phase) String() string {
	chrome := "ChromeHidden"
	if p.ChromeVisible {
		chrome = "ChromeVisible"
	}
	return fmt.Sprintf("%s-%s", p.Playback, chrome)
}

// Phase returns the current state machine position.
func (v *PlayerView) Phase() Phase {
	pb := Paused
	switch {
	case v.state.ResumeSelected:
		pb = Playing
	case v.reachedEnd:
		pb = Ended
	}
	return Phase{Playback: pb, ChromeVisible: v.state.ChromeVisible}
}

// State returns a copy of the overlay state.
func (v *PlayerView) State() overlay.State {
	return v.state
}

// Session returns the playback session.
func (v *PlayerView) Session() Session {
	return v.session
}

// HasPiP reports whether a PiP controller was created.
func (v *PlayerView) HasPiP() bool {
	return v.pip != nil
}

// TimerPending reports whether the auto-hide timer is armed.
func (v *PlayerView) TimerPending() bool {
	return v.timer.Pending()
}

// Closed reports whether Close has run.
func (v *PlayerView) Closed() bool {
	return v.closed
}
