package validator

import (
	"context"
	"testing"

	"svw.info/phitinh/internal/domain"
)

func TestValidateLoShu(t *testing.T) {
	g := domain.BoardGrid{{6, 1, 8}, {7, 5, 3}, {2, 9, 4}}
	ok, conf, err := New().Validate(context.Background(), g)
	if err != nil || !ok || len(conf) != 0 {
		t.Fatalf("Lo Shu grid rejected: ok=%v conf=%v err=%v", ok, conf, err)
	}
}

func TestValidateReportsConflicts(t *testing.T) {
	cases := []struct {
		name string
		grid domain.BoardGrid
		want []domain.CellCoord
	}{
		{"repeat", domain.BoardGrid{{6, 1, 8}, {7, 5, 3}, {2, 9, 6}}, []domain.CellCoord{{Row: 2, Col: 2}}},
		{"zero", domain.BoardGrid{{0, 1, 8}, {7, 5, 3}, {2, 9, 4}}, []domain.CellCoord{{Row: 0, Col: 0}}},
		{"too big", domain.BoardGrid{{6, 1, 8}, {7, 10, 3}, {2, 9, 4}}, []domain.CellCoord{{Row: 1, Col: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conf := New().Check(tc.grid)
			if ok {
				t.Fatalf("grid %v accepted", tc.grid)
			}
			if len(conf) != len(tc.want) || conf[0] != tc.want[0] {
				t.Fatalf("conflicts = %v, want %v", conf, tc.want)
			}
		})
	}
}

func TestValidateHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := New().Validate(ctx, domain.BoardGrid{}); err == nil {
		t.Fatal("expected context error")
	}
}
