// Package icon extracts small application icons for tree decoration.
package icon

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Size is the edge length of a small icon in pixels.
const Size = 16

// DefaultCacheTTL is how long extraction results are reused.
const DefaultCacheTTL = 30 * time.Second

// ErrNoIcon is returned when no decodable image is found for a path.
var ErrNoIcon = errors.New("no icon found")

// imageExts are the extensions tried next to an executable, in order.
var imageExts = []string{".png", ".bmp", ".gif", ".jpg", ".jpeg", ".webp"}

// Extractor loads icons from image files associated with an application path.
type Extractor struct {
	cache *cache
}

// NewExtractor creates an extractor. A ttl of 0 disables caching.
func NewExtractor(ttl time.Duration) *Extractor {
	return &Extractor{cache: newCache(ttl)}
}

// SmallIcon returns a Size x Size icon for the application at path.
// path may name an image directly; otherwise image files sharing the
// executable's base name are tried.
func (e *Extractor) SmallIcon(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrNoIcon
	}
	return e.cache.get(path, func() (image.Image, error) {
		return extract(path)
	})
}

func extract(path string) (image.Image, error) {
	for _, candidate := range candidates(path) {
		img, err := decodeFile(candidate)
		if err != nil {
			continue
		}
		return Scale(img, Size), nil
	}
	return nil, fmt.Errorf("%w for %s", ErrNoIcon, path)
}

func candidates(path string) []string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range imageExts {
		if ext == e {
			return []string{path}
		}
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	out := make([]string, 0, len(imageExts))
	for _, e := range imageExts {
		out = append(out, base+e)
	}
	return out
}

// decodeFile decodes an image and releases the file handle before returning.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Flush drops all cached extraction results.
func (e *Extractor) Flush() {
	e.cache.invalidateAll()
}

// Scale resizes img to a size x size RGBA image.
func Scale(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Dominant returns the average color of the opaque pixels of img.
// Fully transparent images yield color.Black.
func Dominant(img image.Image) color.RGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A < 128 {
				continue
			}
			r += uint64(c.R)
			g += uint64(c.G)
			b += uint64(c.B)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 255}
}
