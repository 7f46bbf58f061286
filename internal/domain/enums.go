package domain

import (
	"errors"
	"strings"
)

// Octant is one of the eight big compass directions. Center is only used for
// the Lo Shu earth grid.
type Octant string

const (
	North     Octant = "bac"
	NorthEast Octant = "dong-bac"
	East      Octant = "dong"
	SouthEast Octant = "dong-nam"
	South     Octant = "nam"
	SouthWest Octant = "tay-nam"
	West      Octant = "tay"
	NorthWest Octant = "tay-bac"
	Center    Octant = "trung"
)

// OctantRing lists the eight outer octants clockwise from north.
var OctantRing = [8]Octant{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var ErrUnknownOctant = errors.New("unknown direction")

// ParseOctant accepts the eight ring keys, case-insensitively.
func ParseOctant(s string) (Octant, error) {
	o := Octant(strings.ToLower(strings.TrimSpace(s)))
	for _, r := range OctantRing {
		if r == o {
			return o, nil
		}
	}
	return "", ErrUnknownOctant
}

// Yuan is the trigram-line position of a mountain.
type Yuan string

const (
	Heaven Yuan = "thien"
	Earth  Yuan = "dia"
	Man    Yuan = "nhan"
)

type Polarity string

const (
	Yin  Polarity = "am"
	Yang Polarity = "duong"
)

// DirectionKind is the precision class of a compass reading.
type DirectionKind string

const (
	Orthodox  DirectionKind = "chinh"
	SeamLine  DirectionKind = "kiem"
	SmallVoid DirectionKind = "tieu-khong-vong"
	LargeVoid DirectionKind = "dai-khong-vong"
)

// IsVoid reports whether the reading falls on a void line.
func (k DirectionKind) IsVoid() bool { return k == SmallVoid || k == LargeVoid }

// Spin is the direction stars travel when flown around the palaces.
type Spin string

const (
	Forward Spin = "thuan"
	Reverse Spin = "nghich"
)

// Phase classifies a star against the current period.
type Phase string

const (
	Prosperous Phase = "vuong"
	Generating Phase = "sinh"
	Advancing  Phase = "tien"
	Declining  Phase = "thoai"
	Dead       Phase = "tu"
)

type Element string

const (
	Metal Element = "kim"
	Wood  Element = "moc"
	Water Element = "thuy"
	Fire  Element = "hoa"
	Soil  Element = "tho"
)

// Relation is how the sitting star's element acts on the facing star's.
type Relation string

const (
	Generates    Relation = "sinh"
	GeneratedBy  Relation = "duoc-sinh"
	Controls     Relation = "khac"
	ControlledBy Relation = "bi-khac"
	Neutral      Relation = "binh"
)

type GateKind string

const (
	OrthodoxGate  GateKind = "chinh"
	AuxiliaryGate GateKind = "phu"
)
