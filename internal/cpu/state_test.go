package cpu

import "testing"

func TestState_PairRoundTrip(t *testing.T) {
	for _, pair := range []Reg16{AF, BC, DE, HL, SP, IX, IY} {
		t.Run(pair.String(), func(t *testing.T) {
			var s State
			for v := 0; v <= 0xFFFF; v++ {
				s.SetPair(pair, uint16(v))
				if got := s.Pair(pair); got != uint16(v) {
					t.Fatalf("Pair(%s) = 0x%04X, want 0x%04X", pair, got, v)
				}
				s.SetPair(pair, s.Pair(pair))
				if got := s.Pair(pair); got != uint16(v) {
					t.Fatalf("rewriting %s changed it to 0x%04X, want 0x%04X", pair, got, v)
				}
			}
		})
	}
}

func TestState_PairIsHighLow(t *testing.T) {
	var s State
	s.SetPair(BC, 0x1234)
	requireEqual8(t, "B", s.B, 0x12)
	requireEqual8(t, "C", s.C, 0x34)

	s.SetPair(AF, 0xABC5)
	requireEqual8(t, "A", s.A, 0xAB)
	requireEqual8(t, "F", uint8(s.F), 0xC5)

	s.H, s.L = 0xDE, 0xAD
	requireEqual16(t, "HL", s.Pair(HL), 0xDEAD)
}

func TestState_PushPop(t *testing.T) {
	bus := &testBus{}
	var s State

	s.SP = 0xD000
	if err := s.Push16(bus, 0x1234); err != nil {
		t.Fatal(err)
	}
	requireEqual16(t, "SP", s.SP, 0xCFFE)
	requireEqual8(t, "(SP+1)", bus.mem[0xCFFF], 0x12)
	requireEqual8(t, "(SP)", bus.mem[0xCFFE], 0x34)

	for v := 0; v <= 0xFFFF; v++ {
		s.SP = 0xDFF0
		if err := s.Push16(bus, uint16(v)); err != nil {
			t.Fatal(err)
		}
		got, err := s.Pop16(bus)
		if err != nil {
			t.Fatal(err)
		}
		if got != uint16(v) {
			t.Fatalf("Pop16() = 0x%04X, want 0x%04X", got, v)
		}
		requireEqual16(t, "SP", s.SP, 0xDFF0)
	}
}

func TestState_FetchWraps(t *testing.T) {
	bus := &testBus{}
	bus.mem[0xFFFF] = 0x34
	bus.mem[0x0000] = 0x12

	s := State{PC: 0xFFFF}
	nn, err := s.Next16(bus)
	if err != nil {
		t.Fatal(err)
	}
	requireEqual16(t, "Next16", nn, 0x1234)
	requireEqual16(t, "PC", s.PC, 0x0001)
}

func TestState_FetchErrorKeepsPC(t *testing.T) {
	bus := &testBus{fail: map[uint16]bool{0x0100: true}}
	s := State{PC: 0x0100}
	if _, err := s.Next8(bus); err == nil {
		t.Fatal("expected an error")
	}
	requireEqual16(t, "PC", s.PC, 0x0100)
}

func TestState_Exchange(t *testing.T) {
	s := State{A: 1, F: FlagCarry, B: 2, C: 3, D: 4, E: 5, H: 6, L: 7}
	s.A_, s.F_ = 0x10, FlagZero

	s.exchangeAF()
	requireEqual8(t, "A", s.A, 0x10)
	requireEqual8(t, "A'", s.A_, 1)
	if s.F != FlagZero || s.F_ != FlagCarry {
		t.Fatalf("F = %s, F' = %s after EX AF,AF'", s.F, s.F_)
	}

	s.exchange()
	requireEqual16(t, "BC", s.Pair(BC), 0)
	requireEqual16(t, "HL'", uint16(s.H_)<<8|uint16(s.L_), 0x0607)
	s.exchange()
	requireEqual16(t, "BC", s.Pair(BC), 0x0203)
	requireEqual16(t, "DE", s.Pair(DE), 0x0405)
}

func TestState_Refresh(t *testing.T) {
	for _, tt := range []struct{ r, want uint8 }{
		{0x00, 0x01},
		{0x05, 0x06},
		{0x7F, 0x00},
		{0xFF, 0x80},
		{0x80, 0x81},
	} {
		s := State{R: tt.r}
		s.refresh()
		requireEqual8(t, "R", s.R, tt.want)
	}
}

func TestFlags_String(t *testing.T) {
	if got := (FlagZero | FlagCarry).String(); got != "-Z---C" {
		t.Errorf("got %q, want %q", got, "-Z---C")
	}
	if got := Flags(0xFF).String(); got != "SZHPNC" {
		t.Errorf("got %q, want %q", got, "SZHPNC")
	}
}

func TestFlags_Bits(t *testing.T) {
	var s State
	s.SetFlag(FlagSign, true)
	s.SetFlag(FlagCarry, true)
	requireEqual8(t, "F", uint8(s.F), 0x81)
	s.SetFlag(FlagSign, false)
	requireEqual8(t, "F", uint8(s.F), 0x01)
	if FlagOverflow != FlagParity {
		t.Error("overflow and parity must share a bit")
	}
}

func TestEvenParity(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		ones := 0
		for b := v; b != 0; b >>= 1 {
			ones += b & 1
		}
		if got := evenParity(uint8(v)); got != (ones%2 == 0) {
			t.Fatalf("evenParity(0x%02X) = %v", v, got)
		}
	}
}
