// Package interrupts provides the interrupt controller the CPU polls
// between instructions.
package interrupts

import "github.com/thelolagemann/gosms/internal/cpu"

const (
	// MaskableFlag is the maskable interrupt line (/INT).
	MaskableFlag uint8 = 1 << iota
	// NonMaskableFlag is the non-maskable interrupt line (/NMI).
	NonMaskableFlag
)

// Service latches interrupt requests until they are cleared.
//
// Requests are only observed: the CPU polls Pending after each step
// while IFF1 is set, and nothing vectors to a handler.
type Service struct {
	Flag uint8 // requested lines
}

var _ cpu.InterruptController = (*Service)(nil)

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Request raises the given interrupt lines.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag
}

// Clear lowers the given interrupt lines.
func (s *Service) Clear(flag uint8) {
	s.Flag &^= flag
}

// Pending returns true if any line is raised.
func (s *Service) Pending() bool {
	return s.Flag != 0
}
