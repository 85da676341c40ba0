package player

import (
	"fmt"
	"strconv"
)

// SetOSDOverlay draws ASS events into an osd-overlay slot whose
// coordinate space is resX×resY.
func (e *Engine) SetOSDOverlay(id int, ass string, resX, resY int) error {
	if err := osdOverlay(e.m, id, "ass-events", ass, resX, resY); err != nil {
		return fmt.Errorf("osd-overlay %d: %w", id, err)
	}
	return nil
}

// RemoveOSDOverlay clears an osd-overlay slot.
func (e *Engine) RemoveOSDOverlay(id int) error {
	if err := osdOverlay(e.m, id, "none", "", 0, 0); err != nil {
		return fmt.Errorf("osd-overlay %d remove: %w", id, err)
	}
	return nil
}

// AddImageOverlay shows a w×h premultiplied BGRA file at x,y, skipping
// its first cropTop rows.
func (e *Engine) AddImageOverlay(id, x, y int, path string, w, h, cropTop int) error {
	if cropTop < 0 || cropTop >= h {
		return fmt.Errorf("overlay-add %d: crop %d of %d rows", id, cropTop, h)
	}
	stride := w * 4
	return e.m.Command([]string{
		"overlay-add",
		strconv.Itoa(id),
		strconv.Itoa(x),
		strconv.Itoa(y),
		path,
		strconv.Itoa(cropTop * stride),
		"bgra",
		strconv.Itoa(w),
		strconv.Itoa(h - cropTop),
		strconv.Itoa(stride),
	})
}

// RemoveImageOverlay removes an image overlay slot.
func (e *Engine) RemoveImageOverlay(id int) error {
	return e.m.Command([]string{"overlay-remove", strconv.Itoa(id)})
}
