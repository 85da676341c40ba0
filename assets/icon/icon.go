package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	frame      = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	screen     = color.RGBA{R: 0x24, G: 0x24, B: 0x2C, A: 0xFF}
	accent     = color.RGBA{R: 0x5A, G: 0x68, B: 0x5A, A: 0xFF} // the "Pro" green
	shadow     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x80}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws a screen with a play glyph and a floating mini window in
// its bottom-right corner.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRoundedRect(img, 0, 0, s, s, s*0.18, background)

	fillRoundedRect(img, s*0.08, s*0.20, s*0.84, s*0.56, s*0.08, frame)
	fillRoundedRect(img, s*0.12, s*0.24, s*0.76, s*0.48, s*0.05, screen)

	fillTriangle(img,
		[2]float64{s * 0.30, s * 0.34},
		[2]float64{s * 0.30, s * 0.58},
		[2]float64{s * 0.48, s * 0.46},
		frame)

	fillRoundedRect(img, s*0.52, s*0.52, s*0.40, s*0.28, s*0.05, shadow)
	fillRoundedRect(img, s*0.50, s*0.50, s*0.40, s*0.28, s*0.05, accent)

	return img
}

// fillRoundedRect fills pixels whose centre lies inside the rounded rect.
func fillRoundedRect(img *image.RGBA, x, y, w, h, r float64, c color.Color) {
	for py := int(y); py < int(math.Ceil(y+h)); py++ {
		for px := int(x); px < int(math.Ceil(x+w)); px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5
			cx := math.Max(x+r, math.Min(fx, x+w-r))
			cy := math.Max(y+r, math.Min(fy, y+h-r))
			if dx, dy := fx-cx, fy-cy; dx*dx+dy*dy <= r*r {
				blendPixel(img, px, py, c)
			}
		}
	}
}

func fillTriangle(img *image.RGBA, a, b, t [2]float64, c color.Color) {
	edge := func(p, q [2]float64, x, y float64) float64 {
		return (q[0]-p[0])*(y-p[1]) - (q[1]-p[1])*(x-p[0])
	}
	minX := math.Min(a[0], math.Min(b[0], t[0]))
	maxX := math.Max(a[0], math.Max(b[0], t[0]))
	minY := math.Min(a[1], math.Min(b[1], t[1]))
	maxY := math.Max(a[1], math.Max(b[1], t[1]))
	for py := int(minY); py <= int(maxY); py++ {
		for px := int(minX); px <= int(maxX); px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5
			e0, e1, e2 := edge(a, b, fx, fy), edge(b, t, fx, fy), edge(t, a, fx, fy)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				blendPixel(img, px, py, c)
			}
		}
	}
}

// blendPixel alpha-blends c over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((r + uint32(dst.R)*257*inv/0xFFFF) >> 8),
		G: uint8((g + uint32(dst.G)*257*inv/0xFFFF) >> 8),
		B: uint8((b + uint32(dst.B)*257*inv/0xFFFF) >> 8),
		A: uint8((a + uint32(dst.A)*257*inv/0xFFFF) >> 8),
	})
}
