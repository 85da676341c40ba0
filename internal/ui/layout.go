package ui

import "image"

// ShowcaseLayout is the portrait page geometry in window pixels.
type ShowcaseLayout struct {
	Canvas image.Point
	Player image.Rectangle

	// Title and Subtitle are the top-right anchors of the labels.
	Title    image.Point
	Subtitle image.Point

	// BackgroundY is where the visible part of the backdrop starts.
	BackgroundY int
}

// NewShowcaseLayout places a 16:9 player topMargin below the top of a
// canvas, with the labels right aligned underneath it.
func NewShowcaseLayout(canvas image.Point, topMargin int) ShowcaseLayout {
	w := canvas.X
	player := image.Rect(0, topMargin, w, topMargin+w*9/16)
	title := image.Pt(w-LabelInset, player.Max.Y+LabelGap)
	titleHeight := int(TitleFontSize * LineHeight)
	return ShowcaseLayout{
		Canvas:      canvas,
		Player:      player,
		Title:       title,
		Subtitle:    image.Pt(title.X, title.Y+titleHeight+LabelGap),
		BackgroundY: player.Max.Y,
	}
}
