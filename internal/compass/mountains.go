package compass

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"svw.info/phitinh/internal/domain"
)

const halfSector = 7.5

type mountainSeed struct {
	key      string
	label    string
	center   float64
	octant   domain.Octant
	yuan     domain.Yuan
	polarity domain.Polarity
}

// Ring order starts at Nham so each octant's three mountains are contiguous.
var seeds = [24]mountainSeed{
	{"nham", "Nhâm", 345, domain.North, domain.Earth, domain.Yang},
	{"ty", "Tý", 0, domain.North, domain.Heaven, domain.Yin},
	{"quy", "Quý", 15, domain.North, domain.Man, domain.Yin},
	{"suu", "Sửu", 30, domain.NorthEast, domain.Earth, domain.Yin},
	{"can", "Cấn", 45, domain.NorthEast, domain.Heaven, domain.Yang},
	{"dan", "Dần", 60, domain.NorthEast, domain.Man, domain.Yang},
	{"giap", "Giáp", 75, domain.East, domain.Earth, domain.Yang},
	{"mao", "Mão", 90, domain.East, domain.Heaven, domain.Yin},
	{"at", "Ất", 105, domain.East, domain.Man, domain.Yin},
	{"thin", "Thìn", 120, domain.SouthEast, domain.Earth, domain.Yin},
	{"ton", "Tốn", 135, domain.SouthEast, domain.Heaven, domain.Yang},
	{"ti", "Tỵ", 150, domain.SouthEast, domain.Man, domain.Yang},
	{"binh", "Bính", 165, domain.South, domain.Earth, domain.Yang},
	{"ngo", "Ngọ", 180, domain.South, domain.Heaven, domain.Yin},
	{"dinh", "Đinh", 195, domain.South, domain.Man, domain.Yin},
	{"mui", "Mùi", 210, domain.SouthWest, domain.Earth, domain.Yin},
	{"khon", "Khôn", 225, domain.SouthWest, domain.Heaven, domain.Yang},
	{"than", "Thân", 240, domain.SouthWest, domain.Man, domain.Yang},
	{"canh", "Canh", 255, domain.West, domain.Earth, domain.Yang},
	{"dau", "Dậu", 270, domain.West, domain.Heaven, domain.Yin},
	{"tan", "Tân", 285, domain.West, domain.Man, domain.Yin},
	{"tuat", "Tuất", 300, domain.NorthWest, domain.Earth, domain.Yin},
	{"can-desc", "Càn", 315, domain.NorthWest, domain.Heaven, domain.Yang},
	{"hoi", "Hợi", 330, domain.NorthWest, domain.Man, domain.Yang},
}

var mountains = func() [24]domain.Mountain {
	var out [24]domain.Mountain
	for i, s := range seeds {
		out[i] = domain.Mountain{
			Key:      s.key,
			Label:    s.label,
			Center:   s.center,
			Start:    Normalize(s.center - halfSector),
			End:      Normalize(s.center + halfSector),
			Octant:   s.octant,
			Yuan:     s.yuan,
			Polarity: s.polarity,
		}
	}
	return out
}()

// defaultIndex is Tý, used when no sector claims an angle.
const defaultIndex = 1

var ErrUnknownMountain = errors.New("unknown mountain")

// Mountains returns a copy of the 24-mountain ring.
func Mountains() []domain.Mountain {
	out := make([]domain.Mountain, len(mountains))
	copy(out, mountains[:])
	return out
}

func indexOf(key string) int {
	for i := range mountains {
		if mountains[i].Key == key {
			return i
		}
	}
	return -1
}

// ByKey finds a mountain by its ASCII key.
func ByKey(key string) (domain.Mountain, bool) {
	i := indexOf(key)
	if i < 0 {
		return domain.Mountain{}, false
	}
	return mountains[i], true
}

// InOctant lists the three mountains of an octant in ring order.
func InOctant(o domain.Octant) []domain.Mountain {
	var out []domain.Mountain
	for _, m := range mountains {
		if m.Octant == o {
			out = append(out, m)
		}
	}
	return out
}

// FirstInOctant returns the first mountain of o in ring order, or the default
// mountain when o is not an outer octant.
func FirstInOctant(o domain.Octant) domain.Mountain {
	for _, m := range mountains {
		if m.Octant == o {
			return m
		}
	}
	return mountains[0]
}

// Neighbors returns the mountains immediately before and after key in the ring.
func Neighbors(key string) (prev, next domain.Mountain, ok bool) {
	i := indexOf(key)
	if i < 0 {
		return domain.Mountain{}, domain.Mountain{}, false
	}
	n := len(mountains)
	return mountains[(i-1+n)%n], mountains[(i+1)%n], true
}

// Lookup resolves a key or label. Exact labels win over diacritic-folded ones,
// so "Càn" and "Cấn" stay distinct while "can" means the key.
func Lookup(name string) (domain.Mountain, error) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return domain.Mountain{}, ErrUnknownMountain
	}
	if m, ok := ByKey(q); ok {
		return m, nil
	}
	for _, m := range mountains {
		if strings.ToLower(m.Label) == q {
			return m, nil
		}
	}
	folded := fold(q)
	if m, ok := ByKey(folded); ok {
		return m, nil
	}
	for _, m := range mountains {
		if fold(m.Label) == folded {
			return m, nil
		}
	}
	return domain.Mountain{}, ErrUnknownMountain
}

// fold lowercases and strips Vietnamese diacritics.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	// đ has no decomposition
	return strings.ReplaceAll(out, "đ", "d")
}
