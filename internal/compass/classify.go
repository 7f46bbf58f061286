package compass

import (
	"math"

	"svw.info/phitinh/internal/domain"
)

const (
	orthodoxLimit = 3.0
	voidLimit     = 7.0
)

var (
	smallVoidAnchors = anchors(24, 7.5, 15)
	largeVoidAnchors = anchors(8, 22.5, 45)
)

func anchors(n int, first, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = first + float64(i)*step
	}
	return out
}

func nearest(angle float64, set []float64) float64 {
	best := math.Inf(1)
	for _, a := range set {
		best = math.Min(best, CircularDistance(angle, a))
	}
	return best
}

// FindMountain returns the sector containing angle.
func FindMountain(angle float64) domain.Mountain {
	a := Normalize(angle)
	for _, m := range mountains {
		if InWrapRange(a, m.Start, m.End) {
			return m
		}
	}
	return mountains[defaultIndex]
}

// Classify locates angle on the ring and grades how close it is to the
// mountain's centre line.
func Classify(angle float64) domain.DirectionInfo {
	a := Normalize(angle)
	m := FindMountain(a)
	delta := CircularDistance(a, m.Center)

	kind := domain.Orthodox
	switch {
	case delta <= orthodoxLimit:
	case delta < voidLimit:
		kind = domain.SeamLine
	default:
		// ties go to the large void
		if nearest(a, largeVoidAnchors) <= nearest(a, smallVoidAnchors) {
			kind = domain.LargeVoid
		} else {
			kind = domain.SmallVoid
		}
	}
	return domain.DirectionInfo{Mountain: m, Kind: kind, Delta: delta, Degrees: a}
}
