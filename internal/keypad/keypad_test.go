package keypad

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestNewKey(t *testing.T) {
	for i := range uint8(KeyCount) {
		key, err := NewKey(i)
		assert.NoError(t, err)
		assert.Equal(t, Key(i), key)
	}

	_, err := NewKey(0x10)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, chip8.ErrInvalidKey))
}

func TestKeypad_Default(t *testing.T) {
	k := New()
	for i := range Key(KeyCount) {
		assert.Equal(t, NotPressed, k.State(i))
		assert.False(t, k.IsPressed(i))
	}
}

func TestKeypad_SetState(t *testing.T) {
	k := New()
	key, err := NewKey(0x4)
	assert.NoError(t, err)

	k.Set(key, Pressed)
	assert.Equal(t, Pressed, k.State(key))
	assert.True(t, k.IsPressed(key))
	assert.Equal(t, NotPressed, k.State(0x5))

	k.Set(key, NotPressed)
	assert.Equal(t, NotPressed, k.State(key))

	k.Set(0xF, Pressed)
	k.Reset()
	assert.False(t, k.IsPressed(0xF))
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "A", Key(0xA).String())
	assert.Equal(t, "Pressed", Pressed.String())
	assert.Equal(t, "NotPressed", NotPressed.String())
}
