package cpu

import (
	"errors"
	"testing"
)

var errTestBus = errors.New("test bus fault")

type portWrite struct {
	port, value uint8
}

// testBus is a flat 64 KiB address space. Addresses in fail refuse
// every access.
type testBus struct {
	mem   [0x10000]uint8
	ports []portWrite
	fail  map[uint16]bool
}

func (b *testBus) Read(addr uint16) (uint8, error) {
	if b.fail[addr] {
		return 0, errTestBus
	}
	return b.mem[addr], nil
}

func (b *testBus) Write(addr uint16, value uint8) error {
	if b.fail[addr] {
		return errTestBus
	}
	b.mem[addr] = value
	return nil
}

func (b *testBus) WritePort(port uint8, value uint8) error {
	b.ports = append(b.ports, portWrite{port, value})
	return nil
}

type testRig struct {
	bus *testBus
	cpu *CPU
}

// newTestRig returns a CPU with program loaded at address 0.
func newTestRig(program ...uint8) *testRig {
	r := &testRig{bus: &testBus{fail: map[uint16]bool{}}, cpu: NewCPU(nil)}
	r.load(0, program...)
	return r
}

// load copies program to start and points PC at it.
func (r *testRig) load(start uint16, program ...uint8) {
	for i, value := range program {
		r.bus.mem[start+uint16(i)] = value
	}
	r.cpu.PC = start
}

func (r *testRig) step(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := r.cpu.Step(r.bus); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}
}

func (r *testRig) word(addr uint16) uint16 {
	return uint16(r.bus.mem[addr+1])<<8 | uint16(r.bus.mem[addr])
}

func requireEqual8(t *testing.T, name string, got, want uint8) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = 0x%02X, want 0x%02X", name, got, want)
	}
}

func requireEqual16(t *testing.T, name string, got, want uint16) {
	t.Helper()
	if got != want {
		t.Fatalf("%s = 0x%04X, want 0x%04X", name, got, want)
	}
}

func requireFlag(t *testing.T, s *State, flag Flag, want bool) {
	t.Helper()
	if got := s.Flag(flag); got != want {
		t.Fatalf("flag %s = %v, want %v (F=%s)", Flags(flag), got, want, s.F)
	}
}
