package loader

import "errors"

var (
	// ErrInvalidImage is returned for images too short to contain any header.
	ErrInvalidImage = errors.New("invalid image")
	// ErrCorruptImage is returned when a fixed size layout has fewer blocks
	// than the cartridge hardware requires.
	ErrCorruptImage = errors.New("corrupt image")
	// ErrWrongContainer is returned when an image is inserted into a slot
	// that does not accept its container format.
	ErrWrongContainer = errors.New("wrong container")
	// ErrUnsupportedChip is returned by Cartridge.CheckSupported for carts
	// with an add-on chip that is identified but not emulated.
	ErrUnsupportedChip = errors.New("unsupported add-on chip")
)
