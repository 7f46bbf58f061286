// Package flight flies a star through the nine palaces.
package flight

import "svw.info/phitinh/internal/domain"

// path is the forward traversal after the centre: NW, N, NE, E, SE, S, SW, W.
var path = [8]domain.CellCoord{
	{Row: 0, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: 2},
	{Row: 1, Col: 2},
	{Row: 2, Col: 2},
	{Row: 2, Col: 1},
	{Row: 2, Col: 0},
	{Row: 1, Col: 0},
}

// Fly places seed in the centre and walks the outer palaces, stepping the
// star down by one (0 wraps to 9) at each palace. Reverse walks the path
// backwards. The result is always a permutation of 1..9.
func Fly(seed int, spin domain.Spin) domain.BoardGrid {
	var g domain.BoardGrid
	g[CenterCoord.Row][CenterCoord.Col] = seed
	cur := seed
	for i := range path {
		p := path[i]
		if spin == domain.Reverse {
			p = path[len(path)-1-i]
		}
		cur--
		if cur <= 0 {
			cur = 9
		}
		g[p.Row][p.Col] = cur
	}
	return g
}

// DetermineSpin: heaven and man mountains fly forward on even seeds, earth
// mountains on odd seeds.
func DetermineSpin(m domain.Mountain, seed int) domain.Spin {
	even := seed%2 == 0
	if m.Yuan == domain.Earth {
		even = !even
	}
	if even {
		return domain.Forward
	}
	return domain.Reverse
}
