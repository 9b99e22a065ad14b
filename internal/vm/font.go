package vm

// FontAddress is the memory address of the built-in font.
const FontAddress = 0x000

// FontSpriteRows is the number of rows of a font glyph.
const FontSpriteRows = 5

// font contains the glyphs 0-9 and A-F, each row's high nibble holds the
// visible pixels. Glyph k starts at FontAddress + k*FontSpriteRows.
var font = [16 * FontSpriteRows]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Glyph returns the font sprite rows of the given hexadecimal digit.
func Glyph(digit uint8) []byte {
	start := int(digit&0x0F) * FontSpriteRows
	glyph := make([]byte, FontSpriteRows)
	copy(glyph, font[start:start+FontSpriteRows])
	return glyph
}
