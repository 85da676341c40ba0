//go:build !linux && !windows

package player

import (
	"fmt"
	"runtime"
)

// WindowHandle is unavailable; mpv opens its own window instead.
func WindowHandle() (int64, error) {
	return 0, fmt.Errorf("window embedding unsupported on %s", runtime.GOOS)
}
