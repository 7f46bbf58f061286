package annual

import (
	"testing"

	"svw.info/phitinh/internal/domain"
)

func TestCalculate(t *testing.T) {
	r := Calculate(2024, domain.North)
	if r.Period != 9 || r.AnnualStar != 5 {
		t.Fatalf("Calculate(2024, bac) = %+v", r)
	}
	if r.DirectionAdvice == "" || r.StarMeaning == "" {
		t.Fatalf("missing advice text: %+v", r)
	}
}

func TestCalculateCoversEveryDirectionAndStar(t *testing.T) {
	for _, o := range domain.OctantRing {
		if Calculate(2000, o).DirectionAdvice == "" {
			t.Fatalf("no advice for %s", o)
		}
	}
	for y := 2000; y < 2009; y++ {
		if Calculate(y, domain.East).StarMeaning == "" {
			t.Fatalf("no star meaning for year %d", y)
		}
	}
}

func TestCalculateUnknownDirection(t *testing.T) {
	r := Calculate(2024, domain.Octant("len"))
	if r.DirectionAdvice != "" {
		t.Fatalf("unexpected advice %q", r.DirectionAdvice)
	}
	if r.StarMeaning == "" {
		t.Fatal("star meaning should not depend on the direction")
	}
}
