package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"

	"github.com/depeter/pipdemo/internal/cache"
	"github.com/depeter/pipdemo/internal/config"
	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/overlay"
	"github.com/depeter/pipdemo/internal/playerview"
)

// ShowcaseEngine is the engine surface the showcase drives: the player
// view's collaborators plus the window-level drawing it does itself.
type ShowcaseEngine interface {
	playerview.Engine
	playerview.AudioSession
	overlay.OSD
	SetVideoRegion(region image.Rectangle, canvas image.Point) error
	AddImageOverlay(id, x, y int, path string, w, h, cropTop int) error
	RemoveImageOverlay(id int) error
}

// BackgroundLoader prepares the backdrop image off the UI goroutine.
type BackgroundLoader interface {
	PrepareAsync(src string, width int, q event.Dispatcher, callback func(cache.Overlay, error))
}

type ShowcaseOptions struct {
	Config *config.Config
	Source string
	Canvas image.Point
	Engine ShowcaseEngine
	PiP    playerview.PiPProvider // nil when disabled
	Images BackgroundLoader       // nil skips the backdrop
	Queue  event.Dispatcher
	Clock  clockwork.Clock
}

// ShowcaseScreen is the product page: a 16:9 player under the top margin,
// two animated labels and an optional backdrop.
type ShowcaseScreen struct {
	cfg    *config.Config
	engine ShowcaseEngine
	images BackgroundLoader
	queue  event.Dispatcher
	clock  clockwork.Clock

	layout   ShowcaseLayout
	frame    image.Rectangle // where the player currently is
	view     *playerview.PlayerView
	controls *overlay.Controls

	pipActive bool
	activeSub *event.Subscription

	appeared  bool
	enteredAt time.Time
	labelsASS string

	background      *cache.Overlay
	backgroundShown bool
	loading         bool

	exiting bool
	closed  bool
}

// NewShowcaseScreen builds the page and its player view. The source is
// loaded paused; playback starts when the screen first appears.
func NewShowcaseScreen(opts ShowcaseOptions) *ShowcaseScreen {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Queue == nil {
		opts.Queue = event.Immediate{}
	}
	s := &ShowcaseScreen{
		cfg:    opts.Config,
		engine: opts.Engine,
		images: opts.Images,
		queue:  opts.Queue,
		clock:  opts.Clock,
		layout: NewShowcaseLayout(opts.Canvas, opts.Config.UI.TopMargin),
	}
	s.frame = s.layout.Player
	s.placeVideo()

	var provider playerview.PiPProvider
	if opts.PiP != nil {
		provider = observedProvider{PiPProvider: opts.PiP, created: s.watchPiP}
	}

	s.view = playerview.New(playerview.Options{
		Region: s.frame,
		Source: opts.Source,
		Engine: opts.Engine,
		NewOverlay: func(size image.Point, withPiP bool) playerview.Overlay {
			s.controls = overlay.NewControls(opts.Engine, SlotControls, s.frame.Min, size, s.layout.Canvas, withPiP)
			return s.controls
		},
		PiP:                     provider,
		Audio:                   opts.Engine,
		Queue:                   opts.Queue,
		Clock:                   opts.Clock,
		HideDelay:               opts.Config.Overlay.HideDelay.Duration,
		TickInterval:            opts.Config.Overlay.TickInterval.Duration,
		ExternalRateResetsTimer: opts.Config.Overlay.ExternalRateResetsTimer,
	})
	return s
}

func (s *ShowcaseScreen) Name() string { return "Showcase" }

// OnEnter starts playback and the label animation the first time the
// screen appears.
func (s *ShowcaseScreen) OnEnter() {
	if s.closed || s.appeared {
		return
	}
	s.appeared = true
	s.enteredAt = s.clock.Now()
	if err := s.engine.Play(); err != nil {
		log.WithError(err).Warn("autoplay failed")
	}
	s.loadBackground()
}

// OnExit tears the page down. The screen cannot be entered again.
func (s *ShowcaseScreen) OnExit() {
	if s.closed {
		return
	}
	s.closed = true
	s.activeSub.Cancel()
	s.activeSub = nil
	s.view.Close()
	if s.controls != nil {
		s.controls.Close()
	}
	s.hideLabels()
	s.hideBackground()
}

// RequestExit asks the manager to pop the screen on its next update.
func (s *ShowcaseScreen) RequestExit() {
	s.exiting = true
}

func (s *ShowcaseScreen) Update() (Transition, error) {
	if s.closed {
		return TransitionNone, nil
	}
	if s.exiting {
		return TransitionPop, nil
	}
	s.view.Update()
	s.renderLabels()
	return TransitionNone, nil
}

// Draw does nothing: mpv owns the window surface via --wid and draws the
// video, labels and backdrop itself.
func (s *ShowcaseScreen) Draw(dst *ebiten.Image) {}

// View returns the page's player view.
func (s *ShowcaseScreen) View() *playerview.PlayerView {
	return s.view
}

// Layout returns the page geometry for the current canvas.
func (s *ShowcaseScreen) Layout() ShowcaseLayout {
	return s.layout
}

// Frame returns where the player is drawn: its page region, or the whole
// window while PiP is active.
func (s *ShowcaseScreen) Frame() image.Rectangle {
	return s.frame
}

// Press routes a click or touch at a window point: buttons first, then
// the view's tap handler. It reports whether the player consumed it.
func (s *ShowcaseScreen) Press(p image.Point) bool {
	if s.closed || !p.In(s.frame) {
		return false
	}
	local := p.Sub(s.frame.Min)
	if s.controls != nil {
		switch s.controls.HitTest(local) {
		case overlay.ButtonResume:
			return s.view.ToggleResume() == nil
		case overlay.ButtonPiP:
			return s.view.TogglePiP() == nil
		}
	}
	return s.view.Tap(local)
}

// SetCanvas tells the screen the window size changed.
func (s *ShowcaseScreen) SetCanvas(canvas image.Point) {
	if s.closed || canvas == s.layout.Canvas || canvas.X <= 0 || canvas.Y <= 0 {
		return
	}
	width := s.layout.Canvas.X
	s.layout = NewShowcaseLayout(canvas, s.cfg.UI.TopMargin)
	s.reframe()
	if !s.pipActive && canvas.X != width {
		s.loadBackground()
	}
}

func (s *ShowcaseScreen) watchPiP(ctr playerview.PiP) {
	s.activeSub = ctr.OnActiveChange(func(active bool) {
		if s.closed || active == s.pipActive {
			return
		}
		s.pipActive = active
		s.reframe()
	})
}

// reframe moves the player between its page region and the whole window
// and shows the page decoration only outside PiP.
func (s *ShowcaseScreen) reframe() {
	if s.pipActive {
		s.frame = image.Rectangle{Max: s.layout.Canvas}
		s.hideLabels()
		s.hideBackground()
	} else {
		s.frame = s.layout.Player
		s.hideBackground()
		s.showBackground()
	}
	s.placeVideo()
	if s.controls != nil {
		s.controls.Reframe(s.frame.Min, s.frame.Size(), s.layout.Canvas)
	}
}

func (s *ShowcaseScreen) placeVideo() {
	if err := s.engine.SetVideoRegion(s.frame, s.layout.Canvas); err != nil {
		log.WithError(err).Debug("video region")
	}
}

func (s *ShowcaseScreen) renderLabels() {
	if !s.appeared || s.pipActive {
		return
	}
	o := labelsAt(s.clock.Since(s.enteredAt))
	if !o.visible() {
		return
	}
	ass := buildLabels(s.layout, o)
	if ass == s.labelsASS {
		return
	}
	if err := s.engine.SetOSDOverlay(SlotLabels, ass, s.layout.Canvas.X, s.layout.Canvas.Y); err != nil {
		log.WithError(err).Debug("labels render failed")
		return
	}
	s.labelsASS = ass
}

func (s *ShowcaseScreen) hideLabels() {
	if s.labelsASS == "" {
		return
	}
	if err := s.engine.RemoveOSDOverlay(SlotLabels); err != nil {
		log.WithError(err).Debug("labels remove failed")
	}
	s.labelsASS = ""
}

func (s *ShowcaseScreen) loadBackground() {
	path := s.cfg.UI.Background
	if path == "" || s.images == nil || s.loading {
		return
	}
	s.loading = true
	width := s.layout.Canvas.X
	s.images.PrepareAsync(path, width, s.queue, func(ov cache.Overlay, err error) {
		s.loading = false
		if s.closed {
			return
		}
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("background unavailable")
			return
		}
		s.hideBackground()
		s.background = &ov
		s.showBackground()
	})
}

func (s *ShowcaseScreen) showBackground() {
	ov := s.background
	if ov == nil || s.closed || s.pipActive || s.backgroundShown {
		return
	}
	if ov.H <= BackgroundTuck {
		return
	}
	// The tucked rows sit behind the player, so they are cropped off.
	if err := s.engine.AddImageOverlay(SlotBackground, 0, s.layout.BackgroundY, ov.Path, ov.W, ov.H, BackgroundTuck); err != nil {
		log.WithError(err).Debug("background overlay failed")
		return
	}
	s.backgroundShown = true
}

func (s *ShowcaseScreen) hideBackground() {
	if !s.backgroundShown {
		return
	}
	if err := s.engine.RemoveImageOverlay(SlotBackground); err != nil {
		log.WithError(err).Debug("background remove failed")
	}
	s.backgroundShown = false
}

// observedProvider reports each controller it creates.
type observedProvider struct {
	playerview.PiPProvider
	created func(playerview.PiP)
}

func (p observedProvider) NewController() (playerview.PiP, error) {
	ctr, err := p.PiPProvider.NewController()
	if err == nil && ctr != nil {
		p.created(ctr)
	}
	return ctr, err
}
