package cpu

// Bus is the memory and I/O space the CPU executes against. Every
// access may fail; a failed access aborts the current step.
type Bus interface {
	// Read returns the byte at addr.
	Read(addr uint16) (uint8, error)
	// Write stores value at addr.
	Write(addr uint16, value uint8) error
	// WritePort writes value to an I/O port.
	WritePort(port uint8, value uint8) error
}

// InterruptController is polled by the CPU after each step while
// interrupts are enabled.
type InterruptController interface {
	Pending() bool
}
