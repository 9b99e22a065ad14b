// Package display provides the 64x32 monochrome framebuffer with XOR sprite
// compositing, coordinate wraparound and collision reporting.
package display

import "strings"

// Display dimensions.
const (
	Width  = 64
	Height = 32
	Pixels = Width * Height
)

// Pixel is the state of a single monochrome pixel.
type Pixel uint8

// Pixel states.
const (
	Off Pixel = iota
	On
)

// DrawResult reports whether a draw call erased previously set pixels.
type DrawResult uint8

// Draw results.
const (
	// Drawn means no set pixel was turned off.
	Drawn DrawResult = iota
	// Overdrawn means at least one set pixel was turned off by the sprite.
	Overdrawn
)

func (r DrawResult) String() string {
	if r == Overdrawn {
		return "Overdrawn"
	}
	return "Drawn"
}

// XCoordinate is a column index, wrapped into 0..Width-1.
type XCoordinate uint8

// NewXCoordinate returns the column for the given value modulo Width.
func NewXCoordinate(x int) XCoordinate {
	return XCoordinate(wrap(x, Width))
}

// Next returns the following column, wrapping to the left edge.
func (x XCoordinate) Next() XCoordinate {
	return NewXCoordinate(int(x) + 1)
}

// YCoordinate is a row index, wrapped into 0..Height-1.
type YCoordinate uint8

// NewYCoordinate returns the row for the given value modulo Height.
func NewYCoordinate(y int) YCoordinate {
	return YCoordinate(wrap(y, Height))
}

// Next returns the following row, wrapping to the top edge.
func (y YCoordinate) Next() YCoordinate {
	return NewYCoordinate(int(y) + 1)
}

func wrap(value, size int) int {
	value %= size
	if value < 0 {
		value += size
	}
	return value
}

// Sprite is an ordered sequence of 8 pixel wide rows, the most significant
// bit of each row is the leftmost pixel.
type Sprite []byte

// SpriteWidth is the number of pixels of a sprite row.
const SpriteWidth = 8

// Display is the framebuffer.
type Display struct {
	pixels [Pixels]Pixel
}

// New returns a cleared display.
func New() *Display {
	return &Display{}
}

// Clear turns off every pixel.
func (d *Display) Clear() {
	for i := range d.pixels {
		d.pixels[i] = Off
	}
}

// Pixel returns the state of the pixel at the given coordinate.
func (d *Display) Pixel(x XCoordinate, y YCoordinate) Pixel {
	return d.pixels[index(x, y)]
}

// Draw composites the sprite at the given coordinate by XORing every sprite
// bit onto the destination pixel. Rows and columns that cross an edge
// continue from the opposite edge. The result is Overdrawn if any pixel that
// was on got turned off by this call.
func (d *Display) Draw(sprite Sprite, x XCoordinate, y YCoordinate) DrawResult {
	result := Drawn

	row := y
	for _, bits := range sprite {
		col := x
		for bit := range SpriteWidth {
			if bits&(0x80>>bit) != 0 {
				idx := index(col, row)
				if d.pixels[idx] == On {
					d.pixels[idx] = Off
					result = Overdrawn
				} else {
					d.pixels[idx] = On
				}
			}
			col = col.Next()
		}
		row = row.Next()
	}

	return result
}

// String renders the display as text, one line per row, using '#' for set
// and '.' for unset pixels.
func (d *Display) String() string {
	return d.Render('#', '.')
}

// Render renders the display as text using the given runes for set and unset pixels.
func (d *Display) Render(on, off rune) string {
	var buf strings.Builder
	buf.Grow(Pixels + Height)
	for y := range Height {
		for x := range Width {
			if d.pixels[y*Width+x] == On {
				buf.WriteRune(on)
			} else {
				buf.WriteRune(off)
			}
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

// index returns the pixel offset, coordinates built without the wrapping
// constructors are wrapped here.
func index(x XCoordinate, y YCoordinate) int {
	return int(y)%Height*Width + int(x)%Width
}
