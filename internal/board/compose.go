// Package board composes the period, facing and sitting star grids of a
// Xuan Kong chart and annotates each palace.
package board

import (
	"svw.info/phitinh/internal/analysis"
	"svw.info/phitinh/internal/domain"
	"svw.info/phitinh/internal/flight"
)

// replacementStars is the Thế Quái table. Only these twelve mountains swap
// their seed on a seam-line reading; the other twelve keep the raw star.
var replacementStars = map[string]int{
	"giap": 1,
	"than": 1,
	"nham": 2,
	"mao":  2,
	"at":   2,
	"ton":  6,
	"ti":   6,
	"suu":  7,
	"can":  7,
	"binh": 7,
	"dinh": 9,
	"canh": 9,
}

// Substitute returns the star to fly for a direction whose raw seed is seed.
func Substitute(seed int, d domain.DirectionInfo) int {
	if d.Kind != domain.SeamLine {
		return seed
	}
	if s, ok := replacementStars[d.Mountain.Key]; ok {
		return s
	}
	return seed
}

func palace(o domain.Octant, fallback domain.Octant) domain.CellCoord {
	if c, ok := flight.PalaceOf(o); ok && o != domain.Center {
		return c
	}
	c, _ := flight.PalaceOf(fallback)
	return c
}

// Compose flies the three grids for one facing/sitting pair and builds the
// per-palace analysis.
func Compose(p domain.PeriodInfo, facing, sitting domain.DirectionInfo, earth domain.BoardGrid) (domain.BoardSet, []domain.CellMeta) {
	van := flight.Fly(p.Period, domain.Forward)

	rawFacing := van.At(palace(facing.Mountain.Octant, domain.North))
	rawSitting := van.At(palace(sitting.Mountain.Octant, domain.South))

	// spin follows the raw seed even when the flown seed was replaced
	huong := flight.Fly(Substitute(rawFacing, facing), flight.DetermineSpin(facing.Mountain, rawFacing))
	son := flight.Fly(Substitute(rawSitting, sitting), flight.DetermineSpin(sitting.Mountain, rawSitting))

	set := domain.BoardSet{Van: van, Huong: huong, Son: son}
	return set, annotate(p.Period, set, earth)
}

func annotate(period int, set domain.BoardSet, earth domain.BoardGrid) []domain.CellMeta {
	cells := make([]domain.CellMeta, 0, len(flight.ReadingOrder))
	for _, o := range flight.ReadingOrder {
		c, _ := flight.PalaceOf(o)
		son, huong, van, e := set.Son.At(c), set.Huong.At(c), set.Van.At(c), earth.At(c)
		pattern, _ := analysis.DetectPair(son, huong)
		cells = append(cells, domain.CellMeta{
			Key:          o,
			Label:        palaceLabels[o],
			Coord:        c,
			Son:          son,
			Huong:        huong,
			Van:          van,
			Earth:        e,
			SonPhase:     analysis.PhaseOfStar(period, son),
			HuongPhase:   analysis.PhaseOfStar(period, huong),
			SonElement:   analysis.ElementOf(son),
			HuongElement: analysis.ElementOf(huong),
			VanElement:   analysis.ElementOf(van),
			EarthElement: analysis.ElementOf(e),
			Relation:     analysis.Relation(son, huong),
			Pattern:      pattern,
		})
	}
	return cells
}

var palaceLabels = map[domain.Octant]string{
	domain.North:     "Bắc",
	domain.NorthEast: "Đông Bắc",
	domain.East:      "Đông",
	domain.SouthEast: "Đông Nam",
	domain.South:     "Nam",
	domain.SouthWest: "Tây Nam",
	domain.West:      "Tây",
	domain.NorthWest: "Tây Bắc",
}
