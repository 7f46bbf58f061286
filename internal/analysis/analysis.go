// Package analysis grades stars against the period and reads the elemental
// relation and pair pattern of a palace.
package analysis

import (
	"strconv"

	"svw.info/phitinh/internal/domain"
)

// PhaseOfStar classifies star relative to period.
func PhaseOfStar(period, star int) domain.Phase {
	if star == period {
		return domain.Prosperous
	}
	next := period + 1
	if period == 9 {
		next = 1
	}
	next2 := period + 2
	if period >= 8 {
		next2 = period - 7
	}
	prev := period - 1
	if period == 1 {
		prev = 9
	}
	switch star {
	case next:
		return domain.Generating
	case next2:
		return domain.Advancing
	case prev:
		return domain.Declining
	}
	return domain.Dead
}

var elementByStar = map[int]domain.Element{
	1: domain.Water,
	2: domain.Soil,
	3: domain.Wood,
	4: domain.Wood,
	5: domain.Soil,
	6: domain.Metal,
	7: domain.Metal,
	8: domain.Soil,
	9: domain.Fire,
}

// ElementOf returns the element of a star or Lo Shu number, empty when n is
// outside 1..9.
func ElementOf(n int) domain.Element { return elementByStar[n] }

var (
	generates = map[domain.Element]domain.Element{
		domain.Wood:  domain.Fire,
		domain.Fire:  domain.Soil,
		domain.Soil:  domain.Metal,
		domain.Metal: domain.Water,
		domain.Water: domain.Wood,
	}
	controls = map[domain.Element]domain.Element{
		domain.Wood:  domain.Soil,
		domain.Soil:  domain.Water,
		domain.Water: domain.Fire,
		domain.Fire:  domain.Metal,
		domain.Metal: domain.Wood,
	}
)

// Relation describes how star a's element acts on star b's. Empty when either
// star has no element.
func Relation(a, b int) domain.Relation {
	ea, eb := ElementOf(a), ElementOf(b)
	if ea == "" || eb == "" {
		return ""
	}
	switch {
	case generates[ea] == eb:
		return domain.Generates
	case generates[eb] == ea:
		return domain.GeneratedBy
	case controls[ea] == eb:
		return domain.Controls
	case controls[eb] == ea:
		return domain.ControlledBy
	}
	return domain.Neutral
}

var pairLabels = map[string]string{
	"2-3": "Đấu Ngưu Sát (khẩu thiệt, kiện tụng)",
	"6-7": "Giao Kiếm Sát (tai nạn, trộm cướp)",
	"3-7": "Xuyên Tâm Sát (cãi cọ, kiện tụng)",
	"1-6": "Thủy Tiên Thiên (tài lộc)",
	"2-7": "Hỏa Tiên Thiên (bệnh tật)",
	"4-9": "Kim Tiên Thiên (công danh)",
	"3-8": "Mộc Tiên Thiên (tài lộc)",
	"6-9": "Hỏa Thiêu Thiên Môn (huyết quang)",
	"2-5": "Nhị Ngũ Hoàng (hung bệnh)",
}

func pairKey(a, b int) string {
	if a > b {
		a, b = b, a
	}
	return strconv.Itoa(a) + "-" + strconv.Itoa(b)
}

// DetectPair looks up the unordered (sitting, facing) pair. A pair maps to
// exactly one table entry, so a palace carries at most one pattern.
func DetectPair(son, huong int) (string, bool) {
	label, ok := pairLabels[pairKey(son, huong)]
	return label, ok
}

// IsRiverDiagramPair reports whether a and b form one of the He Tu pairs
// 1-6, 2-7, 3-8 or 4-9.
func IsRiverDiagramPair(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return a >= 1 && a <= 4 && b == a+5
}
