package terrain

import "testing"

func TestSlopeFromCornersFlat(t *testing.T) {
	for z := 0; z <= MaxTileHeight; z++ {
		h := -1
		s := slopeFromCorners(z, z, z, z, &h)
		if s != SlopeFlat {
			t.Errorf("equal corners at %d: got %v, want FLAT", z, s)
		}
		if h != z {
			t.Errorf("equal corners at %d: got height %d", z, h)
		}
	}
}

func TestSlopeFromCornersCases(t *testing.T) {
	cases := []struct {
		name           string
		n, w, e, s     int
		want           Slope
		wantMin        int
	}{
		{"all equal", 2, 2, 2, 2, SlopeFlat, 2},
		{"south steep", 1, 1, 1, 3, SlopeS | SlopeSteep, 1},
		{"north lowered", 0, 1, 1, 1, SlopeW | SlopeE | SlopeS, 0},
		{"north raised", 1, 0, 0, 0, SlopeN, 0},
		{"west raised", 0, 1, 0, 0, SlopeW, 0},
		{"east raised", 0, 0, 1, 0, SlopeE, 0},
		{"south raised", 0, 0, 0, 1, SlopeS, 0},
		{"north-west edge", 1, 1, 0, 0, SlopeNW, 0},
		{"south-east edge", 0, 0, 1, 1, SlopeSE, 0},
		{"saddle", 1, 0, 0, 1, SlopeN | SlopeS, 0},
		{"north steep", 2, 1, 1, 0, SlopeN | SlopeW | SlopeE | SlopeSteep, 0},
		{"south steep from valley", 0, 1, 1, 2, SlopeW | SlopeE | SlopeS | SlopeSteep, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := slopeFromCorners(c.n, c.w, c.e, c.s, nil)
			if got != c.want {
				t.Errorf("slope = %v, want %v", got, c.want)
			}
			h := -1
			slopeFromCorners(c.n, c.w, c.e, c.s, &h)
			if h != c.wantMin {
				t.Errorf("min height = %d, want %d", h, c.wantMin)
			}
		})
	}
}

// Exhaustively check the classifier invariants over every corner
// quadruple with spread at most two. Larger spreads never occur in a
// valid height field.
func TestSlopeFromCornersInvariants(t *testing.T) {
	const lim = 4
	for n := 0; n < lim; n++ {
		for w := 0; w < lim; w++ {
			for e := 0; e < lim; e++ {
				for s := 0; s < lim; s++ {
					hmin := min(min(n, w), min(e, s))
					hmax := max(max(n, w), max(e, s))
					if hmax-hmin > 2 {
						continue
					}

					var got int
					slope := slopeFromCorners(n, w, e, s, &got)
					if got != hmin {
						t.Fatalf("corners (%d,%d,%d,%d): min = %d, want %d", n, w, e, s, got, hmin)
					}

					raised := 0
					for _, h := range []int{n, w, e, s} {
						if h > hmin {
							raised++
						}
					}
					if slope.CornerCount() != raised {
						t.Fatalf("corners (%d,%d,%d,%d): %d corner flags, want %d", n, w, e, s, slope.CornerCount(), raised)
					}

					if steep := hmax-hmin == 2; slope.IsSteep() != steep {
						t.Fatalf("corners (%d,%d,%d,%d): steep = %v, want %v", n, w, e, s, slope.IsSteep(), steep)
					}

					// Per-corner flags match strict comparison with hmin.
					flags := []struct {
						h    int
						flag Slope
					}{
						{n, SlopeN},
						{w, SlopeW},
						{e, SlopeE},
						{s, SlopeS},
					}
					for _, f := range flags {
						if slope.HasFlag(f.flag) != (f.h != hmin) {
							t.Fatalf("corners (%d,%d,%d,%d): flag %v = %v", n, w, e, s, f.flag, slope.HasFlag(f.flag))
						}
					}
				}
			}
		}
	}
}

func TestSlopeString(t *testing.T) {
	cases := []struct {
		s    Slope
		want string
	}{
		{SlopeFlat, "FLAT"},
		{SlopeN, "N"},
		{SlopeSE, "E|S"},
		{SlopeS | SlopeSteep, "S|STEEP"},
		{SlopeN | SlopeW | SlopeE | SlopeSteep, "N|W|E|STEEP"},
	}
	for _, c := range cases {
		if got := c.s.String(); got != c.want {
			t.Errorf("String(%#x) = %q, want %q", uint8(c.s), got, c.want)
		}
	}
}
