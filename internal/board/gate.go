package board

import (
	"fmt"

	"svw.info/phitinh/internal/analysis"
	"svw.info/phitinh/internal/compass"
	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/flight"
)

// adjacent returns the octants on either side of o in ring order, left first.
func adjacent(o domain.Octant) [2]domain.Octant {
	ring := domain.OctantRing
	n := len(ring)
	for i, r := range ring {
		if r == o {
			return [2]domain.Octant{ring[(i-1+n)%n], ring[(i+1)%n]}
		}
	}
	return [2]domain.Octant{domain.East, domain.West}
}

// DetectGate looks for a Thanh Mon palace beside the facing palace: one whose
// own star, flown again, lands the period star back on itself. Left is tried
// before right. A nil result means neither side qualifies.
func DetectGate(facing domain.DirectionInfo, period int, boards domain.BoardSet) *domain.GateResult {
	facingEarth := flight.EarthNumber(facing.Mountain.Octant)
	for _, o := range adjacent(facing.Mountain.Octant) {
		c, ok := flight.PalaceOf(o)
		if !ok {
			continue
		}
		kind := domain.AuxiliaryGate
		if analysis.IsRiverDiagramPair(flight.EarthNumber(o), facingEarth) {
			kind = domain.OrthodoxGate
		}
		seed := boards.Van.At(c)
		g := flight.Fly(seed, flight.DetermineSpin(compass.FirstInOctant(o), seed))
		if g.At(c) != period {
			continue
		}
		detail := "phụ"
		if kind == domain.OrthodoxGate {
			detail = "Hà Đồ hợp với hướng"
		}
		return &domain.GateResult{
			Palace: o,
			Kind:   kind,
			Note:   fmt.Sprintf("Vượng tinh %d nhập thành môn %s (%s)", period, palaceLabels[o], detail),
		}
	}
	return nil
}
