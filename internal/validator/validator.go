package validator

import (
	"context"

	"svw.info/phitinh/internal/domain"
)

// GridValidator checks that a star grid is a permutation of 1..9.
type GridValidator struct{}

func New() *GridValidator { return &GridValidator{} }

// Check returns the cells holding an out-of-range star or a repeat of an
// earlier cell, scanning row by row.
func (v *GridValidator) Check(g domain.BoardGrid) (bool, []domain.CellCoord) {
	var conf []domain.CellCoord
	m := 0
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			val := g[r][c]
			if val < 1 || val > 9 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf
}

func (v *GridValidator) Validate(ctx context.Context, g domain.BoardGrid) (bool, []domain.CellCoord, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	ok, conf := v.Check(g)
	return ok, conf, nil
}
