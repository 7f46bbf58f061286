package render

import (
	"strings"
	"testing"

	"svw.info/phitinh/internal/board"
)

func TestChartShowsHeaderAndPalaces(t *testing.T) {
	out := Chart(board.Build(2024, 0))
	for _, want := range []string{"Vận 9 (2024-2043)", "Hướng: Tý", "Tọa: Ngọ", "Trung cung", "Tây Bắc", "Đông Nam", "Thành môn"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Tinh bàn thay thế") {
		t.Fatal("orthodox facing should not draw an alternate board")
	}
}

func TestChartDrawsAlternateOnVoidLine(t *testing.T) {
	out := Chart(board.Build(2024, 22))
	if !strings.Contains(out, "Tinh bàn thay thế") || !strings.Contains(out, board.VoidWarning) {
		t.Fatalf("void-line output incomplete:\n%s", out)
	}
}

func TestShorten(t *testing.T) {
	if got := shorten("Đấu Ngưu Sát", 20); got != "Đấu Ngưu Sát" {
		t.Fatalf("shorten changed a short string: %q", got)
	}
	if got := shorten("abcdefgh", 4); got != "abc…" {
		t.Fatalf("shorten = %q", got)
	}
}
