package bitmath

import "testing"

func TestGB(t *testing.T) {
	cases := []struct {
		x    uint32
		s, n uint8
		want uint32
	}{
		{0xFF, 2, 1, 0x01},
		{0xFF, 0, 8, 0xFF},
		{0xB4, 4, 4, 0x0B},
		{0xB4, 0, 4, 0x04},
		{0x00, 3, 5, 0x00},
	}
	for _, c := range cases {
		if got := GB(c.x, c.s, c.n); got != c.want {
			t.Errorf("GB(%#x,%d,%d)=%#x, want %#x", c.x, c.s, c.n, got, c.want)
		}
	}
}

func TestSB(t *testing.T) {
	x := uint32(0xFFFF)
	SB(&x, 4, 8, 0x12)
	if x != 0xF12F {
		t.Errorf("SB window write: got %#x, want 0xF12F", x)
	}
	// Oversized value is truncated to the window.
	x = 0
	SB(&x, 0, 4, 0xFF)
	if x != 0x0F {
		t.Errorf("SB oversized value: got %#x, want 0x0F", x)
	}
}

func TestAB(t *testing.T) {
	// Overflow wraps inside the window without disturbing neighbors.
	x := uint32(0xF0)
	AB(&x, 4, 4, 1)
	if x != 0x00 {
		t.Errorf("AB wrap: got %#x, want 0x00", x)
	}
	x = 0x25
	AB(&x, 4, 4, 3)
	if x != 0x55 {
		t.Errorf("AB add: got %#x, want 0x55", x)
	}
}

func TestSingleBitOps(t *testing.T) {
	var x uint8
	x = SetBit(x, 3)
	if !HasBit(x, 3) || x != 0x08 {
		t.Fatalf("SetBit: got %#x", x)
	}
	x = ToggleBit(x, 0)
	if x != 0x09 {
		t.Fatalf("ToggleBit: got %#x", x)
	}
	x = ClrBit(x, 3)
	if HasBit(x, 3) || x != 0x01 {
		t.Fatalf("ClrBit: got %#x", x)
	}
}

func TestCountBits(t *testing.T) {
	cases := []struct {
		x    uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{0xFF, 8},
		{0xA5, 4},
	}
	for _, c := range cases {
		if got := CountBits(c.x); got != c.want {
			t.Errorf("CountBits(%#x)=%d, want %d", c.x, got, c.want)
		}
	}
}

func TestMinMaxClamp(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max")
	}
	if Clamp(5, 0, 10) != 5 || Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 {
		t.Error("Clamp")
	}
}

func TestIsInside(t *testing.T) {
	cases := []struct {
		x, base, size int
		want          bool
	}{
		{0, 0, 4, true},
		{3, 0, 4, true},
		{4, 0, 4, false},
		{-1, 0, 4, false},
		{5, 5, 1, true},
	}
	for _, c := range cases {
		if got := IsInside1D(c.x, c.base, c.size); got != c.want {
			t.Errorf("IsInside1D(%d,%d,%d)=%v, want %v", c.x, c.base, c.size, got, c.want)
		}
		if got := IsInsideMM(c.x, c.base, c.base+c.size); got != c.want {
			t.Errorf("IsInsideMM(%d,%d,%d)=%v, want %v", c.x, c.base, c.base+c.size, got, c.want)
		}
	}
}
