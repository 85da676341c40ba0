//go:build windows

package player

import (
	"errors"

	"golang.org/x/sys/windows"
)

var procGetForegroundWindow = windows.NewLazySystemDLL("user32.dll").NewProc("GetForegroundWindow")

// WindowHandle returns the HWND of the foreground window.
func WindowHandle() (int64, error) {
	if err := procGetForegroundWindow.Find(); err != nil {
		return 0, err
	}
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return 0, errors.New("no foreground window")
	}
	return int64(hwnd), nil
}
