package cache

import (
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/image/draw"

	"github.com/depeter/pipdemo/internal/event"
	"github.com/depeter/pipdemo/internal/player"
)

// Overlay is an image converted for mpv's overlay-add.
type Overlay struct {
	Path string
	W, H int
}

// ImageCache scales local images to a target width and keeps the BGRA
// result on disk, with an in-memory index of what was prepared.
type ImageCache struct {
	fs       afero.Fs
	cacheDir string
	memory   sync.Map // key -> Overlay
	sem      chan struct{}
}

// NewImageCache creates a cache writing into cacheDir on fs.
func NewImageCache(fs afero.Fs, cacheDir string) (*ImageCache, error) {
	if err := fs.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageCache{
		fs:       fs,
		cacheDir: cacheDir,
		sem:      make(chan struct{}, 2),
	}, nil
}

// Prepare decodes the image at src, scales it to width keeping its
// aspect ratio and writes it as BGRA. Repeats are served from the cache.
func (ic *ImageCache) Prepare(src string, width int) (Overlay, error) {
	if width <= 0 {
		return Overlay{}, fmt.Errorf("prepare %s: width %d", src, width)
	}
	id, key, err := ic.key(src, width)
	if err != nil {
		return Overlay{}, err
	}
	if v, ok := ic.memory.Load(key); ok {
		return v.(Overlay), nil
	}

	img, err := ic.decode(src)
	if err != nil {
		return Overlay{}, err
	}
	scaled := ScaleToWidth(img, width)

	out := filepath.Join(ic.cacheDir, key+".bgra")
	w, h, err := player.WriteBGRA(ic.fs, scaled, out)
	if err != nil {
		return Overlay{}, fmt.Errorf("write %s: %w", out, err)
	}
	ov := Overlay{Path: out, W: w, H: h}
	ic.prune(id, out)
	ic.memory.Store(key, ov)
	return ov, nil
}

// PrepareAsync runs Prepare on a goroutine and delivers the result
// through q.
func (ic *ImageCache) PrepareAsync(src string, width int, q event.Dispatcher, callback func(Overlay, error)) {
	go func() {
		ic.sem <- struct{}{}
		ov, err := ic.Prepare(src, width)
		<-ic.sem
		q.Post(func() { callback(ov, err) })
	}()
}

func (ic *ImageCache) decode(src string) (image.Image, error) {
	f, err := ic.fs.Open(src)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

// key is "<source id>-<variant>": the id names the source path, the
// variant changes whenever the file or the target width changes.
func (ic *ImageCache) key(src string, width int) (id, key string, err error) {
	st, err := ic.fs.Stat(src)
	if err != nil {
		return "", "", err
	}
	idSum := sha256.Sum256([]byte(src))
	variant := sha256.Sum256([]byte(fmt.Sprintf("%d|%d|%d", st.Size(), st.ModTime().UnixNano(), width)))
	id = fmt.Sprintf("%x", idSum[:8])
	return id, fmt.Sprintf("%s-%x", id, variant[:8]), nil
}

// prune removes the other prepared variants of the source id, which a
// changed file or width has made stale.
func (ic *ImageCache) prune(id, keep string) {
	stale, err := afero.Glob(ic.fs, filepath.Join(ic.cacheDir, id+"-*.bgra"))
	if err != nil {
		return
	}
	for _, path := range stale {
		if path == keep {
			continue
		}
		if err := ic.fs.Remove(path); err != nil {
			log.WithError(err).WithField("path", path).Debug("prune cached image")
			continue
		}
		ic.memory.Range(func(k, v any) bool {
			if v.(Overlay).Path == path {
				ic.memory.Delete(k)
			}
			return true
		})
	}
}

// ScaleToWidth resizes img to width, keeping the aspect ratio.
func ScaleToWidth(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := 1
	if b.Dx() > 0 {
		height = max(1, b.Dy()*width/b.Dx())
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
