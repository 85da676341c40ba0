package player

import (
	"image"
	"image/draw"

	"github.com/spf13/afero"
)

// EncodeBGRA converts img to the premultiplied BGRA layout mpv's
// overlay-add expects, row after row with no padding.
func EncodeBGRA(img image.Image) []byte {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	}

	out := make([]byte, len(rgba.Pix))
	for i := 0; i+3 < len(rgba.Pix); i += 4 {
		out[i] = rgba.Pix[i+2]
		out[i+1] = rgba.Pix[i+1]
		out[i+2] = rgba.Pix[i]
		out[i+3] = rgba.Pix[i+3]
	}
	return out
}

// WriteBGRA writes img as a BGRA file at path and returns its size.
func WriteBGRA(fs afero.Fs, img image.Image, path string) (w, h int, err error) {
	b := img.Bounds()
	if err := afero.WriteFile(fs, path, EncodeBGRA(img), 0o644); err != nil {
		return 0, 0, err
	}
	return b.Dx(), b.Dy(), nil
}
