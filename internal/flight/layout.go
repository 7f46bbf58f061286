package flight

import "svw.info/phitinh/internal/domain"

// CenterCoord is the middle palace.
var CenterCoord = domain.CellCoord{Row: 1, Col: 1}

var palaces = map[domain.Octant]domain.CellCoord{
	domain.NorthWest: {Row: 0, Col: 0},
	domain.North:     {Row: 0, Col: 1},
	domain.NorthEast: {Row: 0, Col: 2},
	domain.West:      {Row: 1, Col: 0},
	domain.Center:    CenterCoord,
	domain.East:      {Row: 1, Col: 2},
	domain.SouthWest: {Row: 2, Col: 0},
	domain.South:     {Row: 2, Col: 1},
	domain.SouthEast: {Row: 2, Col: 2},
}

// ReadingOrder lists the eight outer palaces row by row, skipping the centre.
var ReadingOrder = [8]domain.Octant{
	domain.NorthWest, domain.North, domain.NorthEast,
	domain.West, domain.East,
	domain.SouthWest, domain.South, domain.SouthEast,
}

var earthNumbers = map[domain.Octant]int{
	domain.NorthWest: 6,
	domain.North:     1,
	domain.NorthEast: 8,
	domain.West:      7,
	domain.Center:    5,
	domain.East:      3,
	domain.SouthWest: 2,
	domain.South:     9,
	domain.SouthEast: 4,
}

// PalaceOf returns the grid coordinate of o. Unknown octants report false.
func PalaceOf(o domain.Octant) (domain.CellCoord, bool) {
	c, ok := palaces[o]
	return c, ok
}

// EarthNumber is the fixed Lo Shu number of o, or 0 if o is unknown.
func EarthNumber(o domain.Octant) int { return earthNumbers[o] }

// EarthGrid lays the Lo Shu numbers out on the palace grid.
func EarthGrid() domain.BoardGrid {
	var g domain.BoardGrid
	for o, c := range palaces {
		g[c.Row][c.Col] = earthNumbers[o]
	}
	return g
}
