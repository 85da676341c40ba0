// Package overlay renders the player control chrome as mpv OSD events
// and answers hit-test questions for it.
package overlay

import "fmt"

// State is everything the chrome displays. The player view owns it and
// hands a copy to Apply after every change.
type State struct {
	ResumeSelected bool
	ChromeVisible  bool
	Progress       float64

	// PiP button flags, ignored when the overlay has no PiP button.
	PiPEnabled  bool
	PiPSelected bool
}

func (s State) String() string {
	return fmt.Sprintf("resume=%v chrome=%v progress=%.3f pip=%v/%v",
		s.ResumeSelected, s.ChromeVisible, s.Progress, s.PiPEnabled, s.PiPSelected)
}

// Button identifies an interactive control.
type Button int

const (
	ButtonNone Button = iota
	ButtonResume
	ButtonPiP
)

func (b Button) String() string {
	switch b {
	case ButtonResume:
		return "resume"
	case ButtonPiP:
		return "pip"
	default:
		return "none"
	}
}
