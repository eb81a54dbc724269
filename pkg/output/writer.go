// Package output encodes rendered images and delivers them to disk or object storage.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-raytracer/pkg/renderer"
)

// ErrUnsupportedFormat is returned for file extensions with no encoder
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format is an image file encoding
type Format int

const (
	FormatPNG Format = iota
	FormatPPM
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatPPM:
		return "ppm"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	if f == FormatPPM {
		return "image/x-portable-pixmap"
	}
	return "image/png"
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".ppm":
		return FormatPPM, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *renderer.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img.ToRGBA())
	case FormatPPM:
		return WritePPM(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// WritePPM writes img as a plain-text P3 pixmap, top row first
func WritePPM(w io.Writer, img *renderer.Image) error {
	rgba := img.ToRGBA()
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := rgba.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}
	return bw.Flush()
}

// Save writes img to path, creating parent directories as needed
func Save(path string, img *renderer.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return file.Close()
}
