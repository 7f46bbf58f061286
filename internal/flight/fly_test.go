package flight

import (
	"testing"

	"svw.info/phitinh/internal/domain"
)

func isPermutation(g domain.BoardGrid) bool {
	seen := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			v := g[r][c]
			if v < 1 || v > 9 || seen&(1<<v) != 0 {
				return false
			}
			seen |= 1 << v
		}
	}
	return true
}

func TestFlyIsPermutation(t *testing.T) {
	for seed := 1; seed <= 9; seed++ {
		for _, spin := range []domain.Spin{domain.Forward, domain.Reverse} {
			g := Fly(seed, spin)
			if !isPermutation(g) {
				t.Fatalf("Fly(%d, %s) not a permutation: %v", seed, spin, g)
			}
			if g.At(CenterCoord) != seed {
				t.Fatalf("Fly(%d, %s) centre = %d", seed, spin, g.At(CenterCoord))
			}
		}
	}
}

func TestFlyForwardNine(t *testing.T) {
	want := domain.BoardGrid{
		{8, 7, 6},
		{1, 9, 5},
		{2, 3, 4},
	}
	if got := Fly(9, domain.Forward); got != want {
		t.Fatalf("Fly(9, forward) = %v, want %v", got, want)
	}
}

func TestFlyReverseMirrorsPath(t *testing.T) {
	// W=4, SW=3, S=2, SE=1, E=9, NE=8, N=7, NW=6
	want := domain.BoardGrid{
		{6, 7, 8},
		{4, 5, 9},
		{3, 2, 1},
	}
	if got := Fly(5, domain.Reverse); got != want {
		t.Fatalf("Fly(5, reverse) = %v, want %v", got, want)
	}
}

func TestDetermineSpin(t *testing.T) {
	cases := []struct {
		yuan domain.Yuan
		seed int
		want domain.Spin
	}{
		{domain.Heaven, 2, domain.Forward},
		{domain.Heaven, 3, domain.Reverse},
		{domain.Man, 8, domain.Forward},
		{domain.Man, 9, domain.Reverse},
		{domain.Earth, 1, domain.Forward},
		{domain.Earth, 4, domain.Reverse},
	}
	for _, tc := range cases {
		got := DetermineSpin(domain.Mountain{Yuan: tc.yuan}, tc.seed)
		if got != tc.want {
			t.Fatalf("DetermineSpin(%s, %d) = %s, want %s", tc.yuan, tc.seed, got, tc.want)
		}
	}
}

func TestEarthGrid(t *testing.T) {
	want := domain.BoardGrid{
		{6, 1, 8},
		{7, 5, 3},
		{2, 9, 4},
	}
	if got := EarthGrid(); got != want {
		t.Fatalf("EarthGrid() = %v, want %v", got, want)
	}
	for _, o := range ReadingOrder {
		c, ok := PalaceOf(o)
		if !ok || c == CenterCoord {
			t.Fatalf("PalaceOf(%s) = %v, %v", o, c, ok)
		}
		if EarthGrid().At(c) != EarthNumber(o) {
			t.Fatalf("earth number mismatch at %s", o)
		}
	}
	if _, ok := PalaceOf("nowhere"); ok {
		t.Fatal("PalaceOf accepted an unknown octant")
	}
}
