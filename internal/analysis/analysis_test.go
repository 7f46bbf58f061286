package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/phitinh/internal/domain"
)

func TestPhaseOfStarPartitions(t *testing.T) {
	for p := 1; p <= 9; p++ {
		counts := map[domain.Phase]int{}
		for s := 1; s <= 9; s++ {
			counts[PhaseOfStar(p, s)]++
		}
		assert.Equal(t, domain.Prosperous, PhaseOfStar(p, p))
		assert.Equal(t, 1, counts[domain.Prosperous], "period %d", p)
		assert.Equal(t, 1, counts[domain.Generating], "period %d", p)
		assert.Equal(t, 1, counts[domain.Advancing], "period %d", p)
		assert.Equal(t, 1, counts[domain.Declining], "period %d", p)
		assert.Equal(t, 5, counts[domain.Dead], "period %d", p)
	}
}

func TestPhaseOfStarWraps(t *testing.T) {
	assert.Equal(t, domain.Generating, PhaseOfStar(9, 1))
	assert.Equal(t, domain.Advancing, PhaseOfStar(9, 2))
	assert.Equal(t, domain.Declining, PhaseOfStar(9, 8))
	assert.Equal(t, domain.Advancing, PhaseOfStar(8, 1))
	assert.Equal(t, domain.Declining, PhaseOfStar(1, 9))
	assert.Equal(t, domain.Dead, PhaseOfStar(9, 5))
}

func TestElementOf(t *testing.T) {
	want := []domain.Element{"", domain.Water, domain.Soil, domain.Wood, domain.Wood, domain.Soil, domain.Metal, domain.Metal, domain.Soil, domain.Fire}
	for n := 0; n <= 9; n++ {
		assert.Equal(t, want[n], ElementOf(n), "star %d", n)
	}
	assert.Equal(t, domain.Element(""), ElementOf(10))
}

func TestRelation(t *testing.T) {
	cases := []struct {
		a, b int
		want domain.Relation
	}{
		{3, 9, domain.Generates},    // wood -> fire
		{9, 3, domain.GeneratedBy},  // fire <- wood
		{3, 2, domain.Controls},     // wood controls earth
		{2, 3, domain.ControlledBy}, // earth controlled by wood
		{6, 7, domain.Neutral},      // metal, metal
		{1, 9, domain.Controls},     // water controls fire
		{6, 1, domain.Generates},    // metal -> water
		{0, 1, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Relation(tc.a, tc.b), "%d,%d", tc.a, tc.b)
	}
}

func TestDetectPair(t *testing.T) {
	l, ok := DetectPair(3, 2)
	assert.True(t, ok)
	l2, _ := DetectPair(2, 3)
	assert.Equal(t, l, l2)

	_, ok = DetectPair(1, 6)
	assert.True(t, ok)
	_, ok = DetectPair(7, 6)
	assert.True(t, ok)
	_, ok = DetectPair(1, 1)
	assert.False(t, ok)
	_, ok = DetectPair(8, 9)
	assert.False(t, ok)

	found := 0
	for a := 1; a <= 9; a++ {
		for b := a; b <= 9; b++ {
			if _, ok := DetectPair(a, b); ok {
				found++
			}
		}
	}
	assert.Equal(t, 9, found)
}

func TestIsRiverDiagramPair(t *testing.T) {
	assert.True(t, IsRiverDiagramPair(1, 6))
	assert.True(t, IsRiverDiagramPair(9, 4))
	assert.False(t, IsRiverDiagramPair(5, 10))
	assert.False(t, IsRiverDiagramPair(1, 8))
}
