package pip

import "github.com/hajimehoshi/ebiten/v2"

// EbitenHost drives the ebiten window. Call its methods from the game
// loop only.
type EbitenHost struct{}

func (EbitenHost) WindowSize() (int, int)     { return ebiten.WindowSize() }
func (EbitenHost) SetWindowSize(w, h int)     { ebiten.SetWindowSize(w, h) }
func (EbitenHost) WindowPosition() (int, int) { return ebiten.WindowPosition() }
func (EbitenHost) SetWindowPosition(x, y int) { ebiten.SetWindowPosition(x, y) }
func (EbitenHost) IsFullscreen() bool         { return ebiten.IsFullscreen() }
func (EbitenHost) Floating() bool             { return ebiten.IsWindowFloating() }
func (EbitenHost) SetFloating(v bool)         { ebiten.SetWindowFloating(v) }
func (EbitenHost) Decorated() bool            { return ebiten.IsWindowDecorated() }
func (EbitenHost) SetDecorated(v bool)        { ebiten.SetWindowDecorated(v) }

func (EbitenHost) MonitorSize() (int, int) {
	if m := ebiten.Monitor(); m != nil {
		return m.Size()
	}
	return ebiten.ScreenSizeInFullscreen()
}
