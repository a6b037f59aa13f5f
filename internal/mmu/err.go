package mmu

import (
	"errors"

	"github.com/thelolagemann/gosms/pkg/translate"
)

var f = translate.From

var (
	// ErrUnmapped is returned for addresses outside every window.
	ErrUnmapped = errors.New(f("unmapped address"))
	// ErrReadOnly is returned for writes to the ROM window.
	ErrReadOnly = errors.New(f("read-only address"))
)

// Kind is the kind of a memory access.
type Kind uint8

const (
	KindRead Kind = iota
	KindWrite
)

func (k Kind) String() string {
	if k == KindWrite {
		return "write"
	}
	return "read"
}

// AccessError reports a failed memory access.
type AccessError struct {
	Address uint16
	Kind    Kind
	Err     error
}

func (e *AccessError) Error() string {
	return f("%v at $%04X: %v", e.Kind, e.Address, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }
