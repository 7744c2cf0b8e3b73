// Package screenshot saves framebuffer pixels as PNG files.
package screenshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// ErrSize is returned when the pixel buffer does not match the frame size.
var ErrSize = errors.New("screenshot: pixel data size mismatch")

// Capture writes timestamped PNGs into Dir.
type Capture struct {
	Dir    string
	Prefix string

	now func() time.Time
}

// New returns a capture writing prefix_<time>.png files into dir.
func New(dir, prefix string) *Capture {
	return &Capture{Dir: dir, Prefix: prefix, now: time.Now}
}

// Filename returns the path the next capture is written to.
func (c *Capture) Filename() string {
	name := fmt.Sprintf("%s_%s.png", c.Prefix, c.now().Format("2006-01-02_15-04-05.000"))
	if c.Dir != "" {
		name = filepath.Join(c.Dir, name)
	}
	return name
}

// SaveRGBA writes bottom-up RGBA rows as read back from GL and returns the
// file path.
func (c *Capture) SaveRGBA(pixels []byte, width, height int) (string, error) {
	img, err := FlipRGBA(pixels, width, height)
	if err != nil {
		return "", err
	}
	return c.Save(img)
}

// Save writes img and returns the file path.
func (c *Capture) Save(img image.Image) (string, error) {
	if c.Dir != "" {
		if err := os.MkdirAll(c.Dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	filename := c.Filename()

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, file.Close()
}

// FlipRGBA copies bottom-up rows into a top-down image.
func FlipRGBA(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, fmt.Errorf("%dx%d with %d bytes: %w", width, height, len(pixels), ErrSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	row := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * row
		copy(img.Pix[y*img.Stride:y*img.Stride+row], pixels[src:src+row])
	}
	return img, nil
}
