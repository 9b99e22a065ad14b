// Package keypad provides the 16 key hexadecimal keypad.
//
// Layout of the original keypad:
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
package keypad

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// KeyCount is the number of keys of the keypad.
const KeyCount = 16

// Key is a validated key index within 0x0..0xF.
type Key uint8

// NewKey returns the key for the given index or an invalid key error if
// the index is outside of 0x0..0xF.
func NewKey(index uint8) (Key, error) {
	if index >= KeyCount {
		return 0, fmt.Errorf("%w: 0x%X", chip8.ErrInvalidKey, index)
	}
	return Key(index), nil
}

func (k Key) String() string {
	return fmt.Sprintf("%X", uint8(k))
}

// KeyState is the state of a single key.
type KeyState uint8

// Key states.
const (
	NotPressed KeyState = iota
	Pressed
)

func (s KeyState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "NotPressed"
}

// Keypad holds the state of all keys.
type Keypad struct {
	keys [KeyCount]KeyState
}

// New returns a keypad with all keys released.
func New() *Keypad {
	return &Keypad{}
}

// State returns the state of the given key.
func (k *Keypad) State(key Key) KeyState {
	return k.keys[key%KeyCount]
}

// Set sets the state of the given key.
func (k *Keypad) Set(key Key, state KeyState) {
	k.keys[key%KeyCount] = state
}

// IsPressed returns whether the given key is pressed.
func (k *Keypad) IsPressed(key Key) bool {
	return k.State(key) == Pressed
}

// Reset releases all keys.
func (k *Keypad) Reset() {
	for i := range k.keys {
		k.keys[i] = NotPressed
	}
}
