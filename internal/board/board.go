package board

import (
	"svw.info/phitinh/internal/compass"
	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/flight"
	"svw.info/phitinh/internal/period"
)

// VoidWarning is attached to results whose facing lies on a void line.
const VoidWarning = "Hướng phạm Không Vong (≥7°): lập hai tinh bàn và đối chiếu đại/tiểu không vong."

// Build draws the full chart for a building constructed in year and facing
// facingDeg degrees. It accepts any year and any angle and never fails.
func Build(year int, facingDeg float64) domain.BoardResult {
	p := period.Compute(year)
	facing := compass.Classify(facingDeg)
	sitting := compass.Classify(facingDeg + 180)
	earth := flight.EarthGrid()

	res := domain.BoardResult{
		Period:    p,
		Facing:    facing,
		Sitting:   sitting,
		VoidLine:  facing.Kind.IsVoid(),
		EarthGrid: earth,
	}
	if res.VoidLine {
		res.Warning = VoidWarning
	}
	res.Boards, res.Cells = Compose(p, facing, sitting, earth)
	res.Alternate = ResolveAlternate(p, facingDeg, facing, sitting, earth)
	res.Gate = DetectGate(facing, p.Period, res.Boards)
	return res
}
