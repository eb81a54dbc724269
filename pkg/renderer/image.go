package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raytracer/pkg/core"
)

// Image is a height×width matrix of linear colors. Row 0 is the top of the picture.
type Image struct {
	Width  int
	Height int
	Pixels [][]core.Color
	Stats  RenderStats
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// At returns the linear color of pixel (x, y)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y][x]
}

// ToRGBA post-processes every pixel and converts it to 8-bit RGBA
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y, row := range img.Pixels {
		for x, c := range row {
			rgba.SetRGBA(x, y, toRGBA(c))
		}
	}
	return rgba
}

func toRGBA(c core.Color) color.RGBA {
	c = PostProcess(c)
	return color.RGBA{
		R: uint8(256 * c.X),
		G: uint8(256 * c.Y),
		B: uint8(256 * c.Z),
		A: 255,
	}
}
