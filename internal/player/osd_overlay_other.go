//go:build !linux

package player

import "github.com/gen2brain/go-mpv"

// osdOverlay is a no-op without the cgo node-map helper.
func osdOverlay(m *mpv.Mpv, id int, format, data string, resX, resY int) error {
	return nil
}
