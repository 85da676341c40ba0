package ui

// ASS colours are &HBBGGRR&.
const (
	ColorLabel = "&HFFFFFF&"
	ColorPro   = "&H5A685A&" // rgb(90, 104, 90)
)

// Layout constants, in window pixels.
const (
	TitleFontSize    = 40
	SubtitleFontSize = 30
	LineHeight       = 1.2

	LabelInset = 16 // from the right edge
	LabelGap   = 12

	// BackgroundTuck is how far the backdrop starts above the bottom edge
	// of the player, hidden behind it.
	BackgroundTuck = 60
)

// OSD and overlay-add slots used by the showcase.
const (
	SlotBackground = 0 // overlay-add
	SlotControls   = 1 // osd-overlay
	SlotLabels     = 2 // osd-overlay
)
