package board

import (
	"svw.info/phitinh/internal/compass"
	"svw.info/phitinh/internal/domain"
)

// nearerNeighbor picks whichever ring neighbour of m has its centre closer to
// angle. Ties go to the previous mountain.
func nearerNeighbor(m domain.Mountain, angle float64) domain.Mountain {
	prev, next, ok := compass.Neighbors(m.Key)
	if !ok {
		return m
	}
	if compass.CircularDistance(angle, next.Center) < compass.CircularDistance(angle, prev.Center) {
		return next
	}
	return prev
}

// ResolveAlternate draws the second chart for a void-line facing by snapping
// facing and sitting onto the adjacent mountains. It returns nil when the
// facing is not on a void line.
func ResolveAlternate(p domain.PeriodInfo, facingDeg float64, facing, sitting domain.DirectionInfo, earth domain.BoardGrid) *domain.AlternateBoard {
	if !facing.Kind.IsVoid() {
		return nil
	}
	fm := nearerNeighbor(facing.Mountain, facingDeg)
	sm := nearerNeighbor(sitting.Mountain, facingDeg+180)
	alt := domain.AlternateBoard{
		Facing:  domain.DirectionInfo{Mountain: fm, Kind: domain.Orthodox, Degrees: fm.Center},
		Sitting: domain.DirectionInfo{Mountain: sm, Kind: domain.Orthodox, Degrees: sm.Center},
	}
	alt.Boards, alt.Cells = Compose(p, alt.Facing, alt.Sitting, earth)
	return &alt
}
