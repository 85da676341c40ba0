// Package media holds small value types shared by the engine, the
// player view and the overlay.
package media

import (
	"fmt"
	"time"
)

// TimeRange is a half-open interval [Start, Start+Duration).
type TimeRange struct {
	Start    time.Duration
	Duration time.Duration
}

// End returns the exclusive end of the range.
func (r TimeRange) End() time.Duration {
	return r.Start + r.Duration
}

// Empty reports whether the range covers no time.
func (r TimeRange) Empty() bool {
	return r.Duration <= 0
}

// Contains reports whether t lies inside the range.
func (r TimeRange) Contains(t time.Duration) bool {
	return t >= r.Start && t < r.End()
}

func (r TimeRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start, r.End())
}

// Progress returns pos/duration for an item, or 0 when the item has no
// seekable range or no known duration. The ratio is not clamped.
func Progress(pos, duration time.Duration, seekable []TimeRange) float64 {
	if len(seekable) == 0 || duration <= 0 {
		return 0
	}
	return pos.Seconds() / duration.Seconds()
}
