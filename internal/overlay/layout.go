package overlay

import "image"

// Minimum touch target edge in pixels.
const minTarget = 44

// Layout is the chrome geometry in region-local pixels.
type Layout struct {
	Size   image.Point
	Resume image.Rectangle
	// Dim is the dimming panel behind the resume button. Taps inside it
	// belong to the controls it hosts, not to the generic tap handler.
	Dim      image.Rectangle
	PiP      image.Rectangle
	Progress image.Rectangle
}

// NewLayout computes the chrome geometry for a region of the given size.
func NewLayout(size image.Point) Layout {
	w, h := size.X, size.Y
	d := min(w, h) / 5
	if d < minTarget {
		d = minTarget
	}
	center := image.Pt(w/2, h/2)
	half := image.Pt(d/2, d/2)

	dimSide := d * 9 / 5
	dimHalf := image.Pt(dimSide/2, dimSide/2)

	const pad = 12
	pipW, pipH := minTarget, minTarget*3/4

	return Layout{
		Size:     size,
		Resume:   image.Rectangle{Min: center.Sub(half), Max: center.Add(half)},
		Dim:      image.Rectangle{Min: center.Sub(dimHalf), Max: center.Add(dimHalf)},
		PiP:      image.Rect(w-pad-pipW, pad, w-pad, pad+pipH),
		Progress: image.Rect(pad, h-pad-4, w-pad, h-pad),
	}
}
