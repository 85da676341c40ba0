package ui

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"
)

const (
	titleDelay  = time.Second
	titleFade   = 3 * time.Second
	accentFade  = 2 * time.Second
	labelsTotal = titleDelay + titleFade + accentFade
)

const (
	titleText    = "iPhone 11 Pro"
	subtitleText = "Pro 如其名。"
	accentWord   = "Pro"
)

// labelOpacity is the opacity of each label layer at one instant.
// Plain and Accent are the two faces of the cross-dissolving title.
type labelOpacity struct {
	Plain    float64
	Accent   float64
	Subtitle float64
}

func (o labelOpacity) visible() bool {
	return o.Plain > 0 || o.Accent > 0 || o.Subtitle > 0
}

// labelsAt returns the label opacities elapsed after the screen appeared:
// the plain title fades in after a delay, then dissolves into the
// accented title while the subtitle fades in.
func labelsAt(elapsed time.Duration) labelOpacity {
	title := ramp(elapsed-titleDelay, titleFade)
	accent := ramp(elapsed-titleDelay-titleFade, accentFade)
	return labelOpacity{
		Plain:    title * (1 - accent),
		Accent:   accent,
		Subtitle: accent,
	}
}

func ramp(d, over time.Duration) float64 {
	switch {
	case d <= 0:
		return 0
	case d >= over:
		return 1
	}
	return float64(d) / float64(over)
}

// assAlpha converts an opacity to an ASS alpha tag value, 00 opaque.
func assAlpha(opacity float64) string {
	a := int(math.Round((1 - opacity) * 255))
	a = min(max(a, 0), 255)
	return fmt.Sprintf("&H%02X&", a)
}

// accented colours the first occurrence of accentWord in s.
func accented(s string) string {
	i := strings.Index(s, accentWord)
	if i < 0 {
		return s
	}
	end := i + len(accentWord)
	return s[:i] + `{\1c` + ColorPro + `}` + accentWord + `{\1c` + ColorLabel + `}` + s[end:]
}

// buildLabels renders the label layers as ASS events. Fully transparent
// layers are left out.
func buildLabels(l ShowcaseLayout, o labelOpacity) string {
	var b strings.Builder
	label := func(anchor image.Point, size int, opacity float64, body string) {
		if opacity <= 0 {
			return
		}
		fmt.Fprintf(&b, `{\an9\pos(%d,%d)\fs%d\b1\bord0\shad0\1c%s\alpha%s}%s`+"\n",
			anchor.X, anchor.Y, size, ColorLabel, assAlpha(opacity), body)
	}
	label(l.Title, TitleFontSize, o.Plain, titleText)
	label(l.Title, TitleFontSize, o.Accent, accented(titleText))
	label(l.Subtitle, SubtitleFontSize, o.Subtitle, accented(subtitleText))
	return b.String()
}
