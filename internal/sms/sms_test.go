package sms

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/gosms/internal/cartridge"
	"github.com/thelolagemann/gosms/internal/cpu"
	"github.com/thelolagemann/gosms/internal/interrupts"
	"github.com/thelolagemann/gosms/internal/mmu"
	"github.com/thelolagemann/gosms/pkg/log"
)

// hello prints "Hi!\n" through the console port, then halts.
var hello = []byte{
	0x31, 0x00, 0xE0, // LD SP,$E000
	0x21, 0x10, 0x00, // LD HL,msg
	0x7E,       // loop: LD A,(HL)
	0xB7,       // OR A
	0x28, 0x05, // JR Z,done
	0xD3, 0xFD, // OUT ($FD),A
	0x23,       // INC HL
	0x18, 0xF7, // JR loop
	0x76, // done: HALT
	'H', 'i', '!', '\n', 0x00,
}

func newTestMachine(t *testing.T, rom []byte, opts ...Opt) *Machine {
	t.Helper()
	cart, err := cartridge.New(rom)
	require.NoError(t, err)
	return New(cart, opts...)
}

func TestMachine_PowerOn(t *testing.T) {
	m := newTestMachine(t, []byte{0x00})
	assert.Equal(t, cpu.State{}, m.CPU.State)
	assert.Equal(t, uint64(0), m.Steps())
}

func TestMachine_Hello(t *testing.T) {
	var out bytes.Buffer
	m := newTestMachine(t, hello, WithConsole(&out), StepLimit(200))

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, ErrStepLimit)
	assert.Equal(t, "Hi!\n", out.String())
	assert.Equal(t, uint64(200), m.Steps())
	assert.Equal(t, uint16(0x000F), m.CPU.PC, "HALT keeps PC on itself")
}

func TestMachine_DecodeError(t *testing.T) {
	var out bytes.Buffer
	// LD A,'a'; OUT ($FD),A; LD A,'b'; OUT ($FD),A; then an undefined opcode
	m := newTestMachine(t, []byte{0x3E, 'a', 0xD3, 0xFD, 0x3E, 'b', 0xD3, 0xFD, 0xCB, 0x00}, WithConsole(&out))

	err := m.Run(context.Background())
	var de *cpu.DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, uint8(0xCB), de.Opcode)
	assert.Equal(t, cpu.TablePrimary, de.Table)
	assert.Equal(t, uint16(0x0008), de.PC)
	assert.Equal(t, "ab", out.String(), "console is flushed on exit")
	assert.Equal(t, uint64(4), m.Steps())
}

func TestMachine_Unmapped(t *testing.T) {
	m := newTestMachine(t, []byte{0x3A, 0x00, 0xE0}) // LD A,($E000)

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, mmu.ErrUnmapped)

	var se *cpu.StepError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, uint16(0x0000), se.PC)

	var ae *mmu.AccessError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, uint16(0xE000), ae.Address)
	assert.Equal(t, mmu.KindRead, ae.Kind)
}

func TestMachine_WriteToROM(t *testing.T) {
	m := newTestMachine(t, []byte{0x32, 0x00, 0x10}) // LD ($1000),A
	assert.ErrorIs(t, m.Step(), mmu.ErrReadOnly)
}

func TestMachine_Cancel(t *testing.T) {
	m := newTestMachine(t, []byte{0x18, 0xFE}) // JR $0000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Run(ctx), context.Canceled)
}

func TestMachine_Trace(t *testing.T) {
	var logs bytes.Buffer
	m := newTestMachine(t, []byte{0x00, 0xD3, 0x10},
		WithLogger(log.New(&logs, log.LevelDebug)), Trace(), StepLimit(2))

	assert.ErrorIs(t, m.Run(context.Background()), ErrStepLimit)
	assert.Contains(t, logs.String(), "[INFO]\trunning 3 byte image")
	assert.Contains(t, logs.String(), "[DEBUG]\t0000  NOP")
	assert.Contains(t, logs.String(), "[DEBUG]\t0001  OUT ($10),A")
	assert.Contains(t, logs.String(), "[DEBUG]\twrite to port 10 = 00")
}

func TestMachine_Interrupts(t *testing.T) {
	svc := interrupts.NewService()
	m := newTestMachine(t, []byte{0x00, 0xFB, 0x00}, WithInterrupts(svc))
	svc.Request(interrupts.MaskableFlag)

	require.NoError(t, m.Step())
	assert.False(t, m.CPU.InterruptPending())

	require.NoError(t, m.Step()) // EI
	assert.True(t, m.CPU.InterruptPending())

	svc.Clear(interrupts.MaskableFlag)
	require.NoError(t, m.Step())
	assert.False(t, m.CPU.InterruptPending())
}
