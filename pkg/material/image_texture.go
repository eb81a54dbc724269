package material

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-raytracer/pkg/core"
)

// missingTextureColor is returned by textures without pixel data
var missingTextureColor = core.NewColor(1, 0, 0)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], y=0 is the top row
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage converts a decoded image to linear [0, 1] colors
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewColor(
				float32(r)/65535.0,
				float32(g)/65535.0,
				float32(b)/65535.0,
			)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// LoadImageTexture decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file. Images
// larger than maxDimension on either side are downscaled to fit; zero keeps
// the original size.
func LoadImageTexture(filename string, maxDimension int) (*ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	if maxDimension > 0 && (bounds.Dx() > maxDimension || bounds.Dy() > maxDimension) {
		img = resize.Thumbnail(uint(maxDimension), uint(maxDimension), img, resize.Bilinear)
	}

	texture := NewImageTextureFromImage(img)
	core.Logger().Debug("loaded image texture",
		"path", filename,
		"format", format,
		"width", texture.Width,
		"height", texture.Height)
	return texture, nil
}

// Value samples the texture at the given UV coordinates using nearest-neighbor
// filtering. Coordinates are clamped to [0, 1] and v=0 is the bottom row.
func (t *ImageTexture) Value(uv core.Vec2, point core.Point3) core.Color {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingTextureColor
	}

	u := max(0, min(1, uv.X))
	v := 1 - max(0, min(1, uv.Y))

	x := min(int(u*float32(t.Width)), t.Width-1)
	y := min(int(v*float32(t.Height)), t.Height-1)

	return t.Pixels[y*t.Width+x]
}
