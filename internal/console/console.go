// Package console provides the character sink behind the diagnostic
// output port.
package console

import (
	"bufio"
	"io"

	"golang.org/x/term"
)

// Console buffers characters written by the running program. Output is
// flushed on every newline, or on every byte when the underlying
// writer is a terminal.
type Console struct {
	w           *bufio.Writer
	interactive bool
}

// New returns a Console writing to w.
func New(w io.Writer) *Console {
	c := &Console{w: bufio.NewWriter(w)}
	if fd, ok := w.(interface{ Fd() uintptr }); ok {
		c.interactive = term.IsTerminal(int(fd.Fd()))
	}
	return c
}

// WriteByte writes a single character.
func (c *Console) WriteByte(b byte) error {
	if err := c.w.WriteByte(b); err != nil {
		return err
	}
	if c.interactive || b == '\n' {
		return c.w.Flush()
	}
	return nil
}

// Flush writes out any buffered characters.
func (c *Console) Flush() error {
	return c.w.Flush()
}

// Interactive reports whether the console is attached to a terminal.
func (c *Console) Interactive() bool {
	return c.interactive
}
