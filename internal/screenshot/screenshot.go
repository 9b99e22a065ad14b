// Package screenshot renders the framebuffer to an image.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/retroenv/retrochip8/internal/display"
	"golang.org/x/image/draw"
)

// DefaultScale is the pixel scale used when no scale is configured.
const DefaultScale = 8

var palette = color.Palette{
	color.Black,
	color.White,
}

// Render returns the framebuffer as an image, every pixel scaled to a
// square of scale by scale image pixels.
func Render(d *display.Display, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}

	src := image.NewPaletted(image.Rect(0, 0, display.Width, display.Height), palette)
	for y := range display.Height {
		for x := range display.Width {
			if d.Pixel(display.XCoordinate(x), display.YCoordinate(y)) == display.On {
				src.SetColorIndex(x, y, 1)
			}
		}
	}
	if scale == 1 {
		return src
	}

	dst := image.NewPaletted(image.Rect(0, 0, display.Width*scale, display.Height*scale), palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes the scaled framebuffer as PNG to the writer.
func WritePNG(w io.Writer, d *display.Display, scale int) error {
	if err := png.Encode(w, Render(d, scale)); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
