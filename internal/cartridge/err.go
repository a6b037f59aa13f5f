package cartridge

import (
	"errors"

	"github.com/thelolagemann/gosms/pkg/translate"
)

var f = translate.From

var (
	ErrEmptyImage    = errors.New(f("cartridge image is empty"))
	ErrImageTooLarge = errors.New(f("cartridge image exceeds the ROM window"))
	ErrOutOfBounds   = errors.New(f("read past the end of the cartridge image"))
)

// SizeError reports an image that does not fit the ROM window.
type SizeError struct {
	Size int
}

func (e *SizeError) Error() string {
	return f("cartridge image is %v bytes, the ROM window holds %v", e.Size, MaxSize)
}

func (e *SizeError) Unwrap() error { return ErrImageTooLarge }
