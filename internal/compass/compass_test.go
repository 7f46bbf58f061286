package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/phitinh/internal/domain"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-720, 0},
		{359.5, 359.5},
	}
	for _, tc := range cases {
		got := Normalize(tc.in)
		if got != tc.want {
			t.Fatalf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
		}
		if got < 0 || got >= 360 {
			t.Fatalf("Normalize(%v) out of range: %v", tc.in, got)
		}
	}
}

func TestInWrapRange(t *testing.T) {
	assert.True(t, InWrapRange(10, 5, 20))
	assert.True(t, InWrapRange(5, 5, 20))
	assert.False(t, InWrapRange(20, 5, 20))
	assert.True(t, InWrapRange(355, 352.5, 7.5))
	assert.True(t, InWrapRange(0, 352.5, 7.5))
	assert.False(t, InWrapRange(7.5, 352.5, 7.5))
	assert.False(t, InWrapRange(180, 352.5, 7.5))
}

func TestCircularDistance(t *testing.T) {
	assert.Equal(t, 10.0, CircularDistance(355, 5))
	assert.Equal(t, 180.0, CircularDistance(0, 180))
	assert.Equal(t, 3.0, CircularDistance(-3, 0))
	assert.Equal(t, 0.0, CircularDistance(720, 0))
}

func TestMountainsPartitionCircle(t *testing.T) {
	ms := Mountains()
	require.Len(t, ms, 24)
	for a := 0.0; a < 360; a += 0.25 {
		hits := 0
		octants := map[domain.Octant]int{}
		for _, m := range ms {
			if InWrapRange(a, m.Start, m.End) {
				hits++
				octants[m.Octant]++
			}
		}
		if hits != 1 || len(octants) != 1 {
			t.Fatalf("angle %v matched %d mountains across %d octants", a, hits, len(octants))
		}
	}
}

func TestMountainsReturnsCopy(t *testing.T) {
	ms := Mountains()
	ms[0].Label = "changed"
	m, ok := ByKey("nham")
	require.True(t, ok)
	assert.Equal(t, "Nhâm", m.Label)
}

func TestOctantsHoldThreeMountains(t *testing.T) {
	for _, o := range domain.OctantRing {
		got := InOctant(o)
		require.Len(t, got, 3, "octant %s", o)
		assert.Equal(t, got[0], FirstInOctant(o))
	}
	assert.Equal(t, "nham", FirstInOctant(domain.North).Key)
	assert.Equal(t, "tuat", FirstInOctant(domain.NorthWest).Key)
}

func TestNeighborsWrap(t *testing.T) {
	prev, next, ok := Neighbors("nham")
	require.True(t, ok)
	assert.Equal(t, "hoi", prev.Key)
	assert.Equal(t, "ty", next.Key)

	_, _, ok = Neighbors("nope")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	for _, m := range Mountains() {
		got, err := Lookup(m.Key)
		require.NoError(t, err)
		assert.Equal(t, m.Key, got.Key)

		got, err = Lookup(m.Label)
		require.NoError(t, err)
		assert.Equal(t, m.Key, got.Key, "label %s", m.Label)
	}

	cases := map[string]string{
		"TÝ":    "ty",
		" ngo ": "ngo",
		"Ngọ":   "ngo",
		"dinh":  "dinh",
		"Đinh":  "dinh",
		"Càn":   "can-desc",
		"Cấn":   "can",
		"thân":  "than",
	}
	for in, want := range cases {
		got, err := Lookup(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.Key, in)
	}

	_, err := Lookup("bogus")
	assert.ErrorIs(t, err, ErrUnknownMountain)
	_, err = Lookup("")
	assert.ErrorIs(t, err, ErrUnknownMountain)
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		angle float64
		kind  domain.DirectionKind
	}{
		{90, domain.Orthodox},
		{93, domain.Orthodox},
		{87, domain.Orthodox},
		{93.001, domain.SeamLine},
		{86.999, domain.SeamLine},
		{96.999, domain.SeamLine},
		{97, domain.SmallVoid},
		{83, domain.SmallVoid},
		{22, domain.LargeVoid},
		{337.5 + 0.25, domain.LargeVoid},
	}
	for _, tc := range cases {
		got := Classify(tc.angle)
		assert.Equal(t, tc.kind, got.Kind, "angle %v (delta %v)", tc.angle, got.Delta)
	}
}

func TestClassifyNorth(t *testing.T) {
	d := Classify(0)
	assert.Equal(t, "ty", d.Mountain.Key)
	assert.Equal(t, domain.Orthodox, d.Kind)
	assert.Equal(t, 0.0, d.Delta)

	d = Classify(-2)
	assert.Equal(t, "ty", d.Mountain.Key)
	assert.Equal(t, 2.0, d.Delta)
	assert.Equal(t, 358.0, d.Degrees)

	assert.Equal(t, "ngo", Classify(180).Mountain.Key)
	assert.Equal(t, "nham", Classify(352).Mountain.Key)
	assert.Equal(t, "ty", Classify(352.5).Mountain.Key)
}
