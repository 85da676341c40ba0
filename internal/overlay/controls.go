package overlay

import (
	"image"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

// OSD is the mpv osd-overlay surface the chrome draws on.
type OSD interface {
	SetOSDOverlay(id int, ass string, resX, resY int) error
	RemoveOSDOverlay(id int) error
}

// Controls is the control chrome of one player region.
type Controls struct {
	osd     OSD
	id      int
	origin  image.Point // region offset inside the canvas
	canvas  image.Point // OSD resolution, the window size
	layout  Layout
	withPiP bool

	state    State
	rendered bool
	shown    bool
}

// NewControls creates chrome for a region at origin with the given size,
// drawn into OSD slot id of a canvas-sized OSD.
func NewControls(osd OSD, id int, origin, size, canvas image.Point, withPiP bool) *Controls {
	return &Controls{
		osd:     osd,
		id:      id,
		origin:  origin,
		canvas:  canvas,
		layout:  NewLayout(size),
		withPiP: withPiP,
	}
}

// Apply stores s and redraws when it differs from what is on screen.
func (c *Controls) Apply(s State) {
	s.Progress = lo.Clamp(s.Progress, 0, 1)
	if c.rendered && s == c.state {
		return
	}
	c.state = s
	c.rendered = true
	c.render()
}

// State returns the last applied state.
func (c *Controls) State() State {
	return c.state
}

// Layout returns the chrome geometry in region-local pixels.
func (c *Controls) Layout() Layout {
	return c.layout
}

// HasPiPButton reports whether the chrome carries a PiP button.
func (c *Controls) HasPiPButton() bool {
	return c.withPiP
}

// IsExcluded reports whether a region-local point lies in the dimming
// panel while the chrome is visible.
func (c *Controls) IsExcluded(p image.Point) bool {
	return c.state.ChromeVisible && p.In(c.layout.Dim)
}

// HitTest returns the button under a region-local point. Hidden chrome
// has no buttons and a disabled PiP button takes no hits.
func (c *Controls) HitTest(p image.Point) Button {
	if !c.state.ChromeVisible {
		return ButtonNone
	}
	switch {
	case p.In(c.layout.Resume):
		return ButtonResume
	case c.withPiP && c.state.PiPEnabled && p.In(c.layout.PiP):
		return ButtonPiP
	}
	return ButtonNone
}

// Reframe moves the chrome to a new region and canvas, redrawing when
// something is on screen.
func (c *Controls) Reframe(origin, size, canvas image.Point) {
	if origin == c.origin && canvas == c.canvas && size == c.layout.Size {
		return
	}
	c.origin = origin
	c.canvas = canvas
	c.layout = NewLayout(size)
	if c.rendered {
		c.render()
	}
}

// Close removes the chrome from the OSD.
func (c *Controls) Close() {
	if c.shown {
		c.remove()
	}
	c.rendered = false
}

func (c *Controls) render() {
	if !c.state.ChromeVisible {
		if c.shown {
			c.remove()
		}
		return
	}
	ass := buildChrome(c.layout, c.origin, c.state, c.withPiP)
	if err := c.osd.SetOSDOverlay(c.id, ass, c.canvas.X, c.canvas.Y); err != nil {
		log.WithError(err).WithField("osd", c.id).Debug("overlay render failed")
		return
	}
	c.shown = true
}

func (c *Controls) remove() {
	if err := c.osd.RemoveOSDOverlay(c.id); err != nil {
		log.WithError(err).WithField("osd", c.id).Debug("overlay remove failed")
	}
	c.shown = false
}
