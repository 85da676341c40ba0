package overlay

import (
	"fmt"
	"image"
	"strings"
)

// ASS colours are &HBBGGRR; alpha is a separate &HAA& where 00 is opaque.
const (
	colorWhite  = "&HFFFFFF&"
	colorBlack  = "&H000000&"
	colorAccent = "&HDCA400&" // #00A4DC
	colorMuted  = "&H888888&"

	alphaOpaque = "&H00&"
	alphaDim    = "&H60&"
	alphaPanel  = "&H80&"
	alphaTrack  = "&HA0&"
)

// buildChrome renders the visible chrome as ASS events positioned in
// canvas pixels.
func buildChrome(l Layout, origin image.Point, s State, withPiP bool) string {
	var b strings.Builder

	dim := l.Dim.Add(origin)
	shape(&b, dim.Min, colorBlack, alphaPanel,
		roundRect(dim.Dx(), dim.Dy(), dim.Dx()/2))

	resume := l.Resume.Add(origin)
	if s.ResumeSelected {
		shape(&b, resume.Min, colorWhite, alphaOpaque, pauseGlyph(resume.Dx(), resume.Dy()))
	} else {
		shape(&b, resume.Min, colorWhite, alphaOpaque, playGlyph(resume.Dx(), resume.Dy()))
	}

	if withPiP {
		pip := l.PiP.Add(origin)
		clr, alpha := colorWhite, alphaOpaque
		switch {
		case !s.PiPEnabled:
			clr, alpha = colorMuted, alphaDim
		case s.PiPSelected:
			clr = colorAccent
		}
		shape(&b, pip.Min, clr, alpha, pipGlyph(pip.Dx(), pip.Dy()))
	}

	bar := l.Progress.Add(origin)
	r := bar.Dy() / 2
	shape(&b, bar.Min, colorWhite, alphaTrack, roundRect(bar.Dx(), bar.Dy(), r))
	if fill := int(float64(bar.Dx()) * s.Progress); fill > 0 {
		fill = max(fill, 2*r)
		shape(&b, bar.Min, colorAccent, alphaOpaque, roundRect(fill, bar.Dy(), r))
	}

	return b.String()
}

// shape writes one drawing event anchored top-left at pos.
func shape(b *strings.Builder, pos image.Point, clr, alpha, drawing string) {
	fmt.Fprintf(b, "{\\an7\\pos(%d,%d)\\bord0\\shad0\\1c%s\\1a%s\\p1}%s{\\p0}\n",
		pos.X, pos.Y, clr, alpha, drawing)
}

// roundRect draws a w×h rectangle with corner radius r, clockwise from
// the top edge. Corners are quadratic-looking cubic segments.
func roundRect(w, h, r int) string {
	r = min(r, w/2, h/2)
	p := path{}
	p.move(r, 0)
	p.line(w-r, 0)
	p.curve(w, 0, w, 0, w, r)
	p.line(w, h-r)
	p.curve(w, h, w, h, w-r, h)
	p.line(r, h)
	p.curve(0, h, 0, h, 0, h-r)
	p.line(0, r)
	p.curve(0, 0, 0, 0, r, 0)
	return p.String()
}

// playGlyph is a right-pointing triangle inset in a w×h box.
func playGlyph(w, h int) string {
	p := path{}
	p.move(w*3/10, h/5)
	p.line(w*4/5, h/2)
	p.line(w*3/10, h*4/5)
	return p.String()
}

// pauseGlyph is two vertical bars inset in a w×h box.
func pauseGlyph(w, h int) string {
	barW := w / 6
	top, bottom := h/5, h*4/5
	p := path{}
	for _, x := range []int{w/2 - barW - w/12, w/2 + w/12} {
		p.move(x, top)
		p.line(x+barW, top)
		p.line(x+barW, bottom)
		p.line(x, bottom)
	}
	return p.String()
}

// pipGlyph is a screen outline with a filled inset window at the
// bottom-right.
func pipGlyph(w, h int) string {
	const t = 3
	p := path{}
	// outer frame, drawn as outer rect then inner rect reversed
	p.move(0, 0)
	p.line(w, 0)
	p.line(w, h)
	p.line(0, h)
	p.move(t, t)
	p.line(t, h-t)
	p.line(w-t, h-t)
	p.line(w-t, t)
	// inset window
	p.move(w/2, h/2)
	p.line(w-2*t, h/2)
	p.line(w-2*t, h-2*t)
	p.line(w/2, h-2*t)
	return p.String()
}

// path accumulates ASS drawing commands.
type path struct {
	parts []string
}

func (p *path) move(x, y int) {
	p.parts = append(p.parts, fmt.Sprintf("m %d %d", x, y))
}

func (p *path) line(x, y int) {
	p.parts = append(p.parts, fmt.Sprintf("l %d %d", x, y))
}

func (p *path) curve(x1, y1, x2, y2, x3, y3 int) {
	p.parts = append(p.parts, fmt.Sprintf("b %d %d %d %d %d %d", x1, y1, x2, y2, x3, y3))
}

func (p *path) String() string {
	return strings.Join(p.parts, " ")
}
