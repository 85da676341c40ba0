// Package pip moves the host window in and out of a small floating
// Picture-in-Picture frame.
package pip

import (
	"errors"
	"image"
	"runtime"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/depeter/pipdemo/internal/config"
	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/playerview"
)

// ErrNotPossible is returned by Start while PiP is not possible.
var ErrNotPossible = errors.New("picture-in-picture not possible")

// desktopOS lists the platforms whose window managers honour floating
// undecorated windows.
var desktopOS = []string{"linux", "windows", "darwin", "freebsd"}

// WindowHost is the slice of window management PiP needs.
type WindowHost interface {
	WindowSize() (int, int)
	SetWindowSize(w, h int)
	WindowPosition() (int, int)
	SetWindowPosition(x, y int)
	MonitorSize() (int, int)
	IsFullscreen() bool
	Floating() bool
	SetFloating(bool)
	Decorated() bool
	SetDecorated(bool)
}

// MediaState reports whether the engine has something to show.
type MediaState interface {
	Duration() time.Duration
}

// Provider answers the support query and builds controllers.
type Provider struct {
	cfg   config.PiPConfig
	host  WindowHost
	media MediaState
	goos  string

	current *Controller
}

// NewProvider creates a provider for the running platform.
func NewProvider(cfg config.PiPConfig, host WindowHost, media MediaState) *Provider {
	return &Provider{cfg: cfg, host: host, media: media, goos: runtime.GOOS}
}

// Supported reports whether PiP is enabled and the platform can do it.
func (p *Provider) Supported() bool {
	return p.cfg.Enabled && p.host != nil && lo.Contains(desktopOS, p.goos)
}

// NewController creates a controller bound to the host window.
func (p *Provider) NewController() (playerview.PiP, error) {
	if !p.Supported() {
		return nil, ErrNotPossible
	}
	p.current = NewController(p.cfg, p.host, p.media)
	return p.current, nil
}

// Current returns the most recently created controller, or nil.
func (p *Provider) Current() *Controller {
	return p.current
}

// Update forwards the frame tick to the current controller.
func (p *Provider) Update() {
	if p.current != nil {
		p.current.Update()
	}
}

type geometry struct {
	size      image.Point
	pos       image.Point
	floating  bool
	decorated bool
}

// Controller implements playerview.PiP. Start and Stop act on the
// window immediately; the change feeds fire on the next Update.
type Controller struct {
	cfg   config.PiPConfig
	host  WindowHost
	media MediaState

	saved  geometry
	active bool

	reportedActive   bool
	possible         bool
	reportedPossible bool

	possibleFeed event.Feed[bool]
	activeFeed   event.Feed[bool]
}

// NewController creates an inactive controller.
func NewController(cfg config.PiPConfig, host WindowHost, media MediaState) *Controller {
	c := &Controller{cfg: cfg, host: host, media: media}
	c.possible = c.computePossible()
	c.reportedPossible = c.possible
	return c
}

// Start shrinks the window into the PiP frame.
func (c *Controller) Start() error {
	if c.active {
		return nil
	}
	if !c.computePossible() {
		return ErrNotPossible
	}

	w, h := c.host.WindowSize()
	x, y := c.host.WindowPosition()
	c.saved = geometry{
		size:      image.Pt(w, h),
		pos:       image.Pt(x, y),
		floating:  c.host.Floating(),
		decorated: c.host.Decorated(),
	}

	mw, mh := c.host.MonitorSize()
	frame := Frame(image.Pt(mw, mh), image.Pt(c.cfg.Width, c.cfg.Height), c.cfg.Margin)

	c.host.SetDecorated(false)
	c.host.SetFloating(true)
	c.host.SetWindowSize(frame.Dx(), frame.Dy())
	c.host.SetWindowPosition(frame.Min.X, frame.Min.Y)
	c.active = true

	log.WithField("frame", frame).Info("picture-in-picture started")
	return nil
}

// Stop restores the window geometry saved by Start.
func (c *Controller) Stop() error {
	if !c.active {
		return nil
	}
	c.host.SetWindowSize(c.saved.size.X, c.saved.size.Y)
	c.host.SetWindowPosition(c.saved.pos.X, c.saved.pos.Y)
	c.host.SetFloating(c.saved.floating)
	c.host.SetDecorated(c.saved.decorated)
	c.active = false

	log.Info("picture-in-picture stopped")
	return nil
}

// Possible reports whether Start would succeed.
func (c *Controller) Possible() bool {
	return c.possible
}

// Active reports whether the window is in the PiP frame.
func (c *Controller) Active() bool {
	return c.active
}

func (c *Controller) OnPossibleChange(fn func(bool)) *event.Subscription {
	return c.possibleFeed.Subscribe(fn)
}

func (c *Controller) OnActiveChange(fn func(bool)) *event.Subscription {
	return c.activeFeed.Subscribe(fn)
}

// Update recomputes the observable properties and emits changes. Call
// once per UI frame.
func (c *Controller) Update() {
	c.possible = c.computePossible()
	if c.possible != c.reportedPossible {
		c.reportedPossible = c.possible
		c.possibleFeed.Emit(c.possible)
	}
	if c.active != c.reportedActive {
		c.reportedActive = c.active
		c.activeFeed.Emit(c.active)
	}
}

func (c *Controller) computePossible() bool {
	if c.active {
		return true
	}
	if c.host.IsFullscreen() {
		return false
	}
	return c.media != nil && c.media.Duration() > 0
}

// Frame places a PiP frame of the given size at the bottom-right of a
// monitor, margin pixels from both edges. The frame shrinks to fit small
// monitors, keeping its aspect ratio.
func Frame(monitor, size image.Point, margin int) image.Rectangle {
	maxW := monitor.X - 2*margin
	maxH := monitor.Y - 2*margin
	w, h := size.X, size.Y
	if maxW > 0 && w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if maxH > 0 && h > maxH {
		w = w * maxH / h
		h = maxH
	}
	origin := image.Pt(monitor.X-margin-w, monitor.Y-margin-h)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}
}
