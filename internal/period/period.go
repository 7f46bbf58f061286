// Package period maps calendar years onto the nine 20-year periods of the
// 180-year Xuan Kong cycle.
package period

import "svw.info/phitinh/internal/domain"

const (
	epoch  = 1864 // first year of period 1
	length = 20
	count  = 9
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, n int) int { return ((a % n) + n) % n }

// Compute returns the period containing year. Any year is accepted.
func Compute(year int) domain.PeriodInfo {
	idx := floorDiv(year-epoch, length)
	start := epoch + idx*length
	return domain.PeriodInfo{
		Period:    mod(idx, count) + 1,
		StartYear: start,
		EndYear:   start + length - 1,
	}
}

// AnnualStar is the simplified nine-year cycle star for year.
func AnnualStar(year int) int { return mod(year-4, count) + 1 }
