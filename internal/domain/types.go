package domain

// Mountain is one of the 24 fixed 15 degree compass sectors.
type Mountain struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Center   float64  `json:"center"`
	Start    float64  `json:"start"`
	End      float64  `json:"end"`
	Octant   Octant   `json:"octant"`
	Yuan     Yuan     `json:"yuan"`
	Polarity Polarity `json:"polarity"`
}

// DirectionInfo is a classified compass reading.
type DirectionInfo struct {
	Mountain Mountain      `json:"mountain"`
	Kind     DirectionKind `json:"kind"`
	Delta    float64       `json:"delta"`
	Degrees  float64       `json:"degrees"`
}

// PeriodInfo is the 20-year period a year belongs to.
type PeriodInfo struct {
	Period    int `json:"period"`
	StartYear int `json:"startYear"`
	EndYear   int `json:"endYear"`
}

// BoardGrid is a 3x3 palace grid, north on top: row 0 is NW, N, NE.
type BoardGrid [3][3]int

// At returns the value at c.
func (g BoardGrid) At(c CellCoord) int { return g[c.Row][c.Col] }

// CellCoord identifies a palace on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoardSet holds the period (Van), facing (Huong) and sitting (Son) grids.
type BoardSet struct {
	Van   BoardGrid `json:"van"`
	Huong BoardGrid `json:"huong"`
	Son   BoardGrid `json:"son"`
}

// CellMeta is the analysis of one outer palace.
type CellMeta struct {
	Key          Octant    `json:"key"`
	Label        string    `json:"label"`
	Coord        CellCoord `json:"coord"`
	Son          int       `json:"son"`
	Huong        int       `json:"huong"`
	Van          int       `json:"van"`
	Earth        int       `json:"earth"`
	SonPhase     Phase     `json:"sonPhase"`
	HuongPhase   Phase     `json:"huongPhase"`
	SonElement   Element   `json:"sonElement,omitempty"`
	HuongElement Element   `json:"huongElement,omitempty"`
	VanElement   Element   `json:"vanElement,omitempty"`
	EarthElement Element   `json:"earthElement,omitempty"`
	Relation     Relation  `json:"relation,omitempty"`
	// Pattern holds at most one star-pair label; an unordered pair maps to one entry.
	Pattern string `json:"pattern,omitempty"`
}

// GateResult is a detected Thanh Mon palace.
type GateResult struct {
	Palace Octant   `json:"palace"`
	Kind   GateKind `json:"kind"`
	Note   string   `json:"note"`
}

// AlternateBoard is the second chart drawn when the facing falls on a void line.
type AlternateBoard struct {
	Facing  DirectionInfo `json:"facing"`
	Sitting DirectionInfo `json:"sitting"`
	Boards  BoardSet      `json:"boards"`
	Cells   []CellMeta    `json:"cells"`
}

// BoardResult is the full chart for one (year, facing) query.
type BoardResult struct {
	Period    PeriodInfo      `json:"period"`
	Facing    DirectionInfo   `json:"facing"`
	Sitting   DirectionInfo   `json:"sitting"`
	VoidLine  bool            `json:"voidLine"`
	Warning   string          `json:"warning,omitempty"`
	Boards    BoardSet        `json:"boards"`
	EarthGrid BoardGrid       `json:"earthGrid"`
	Cells     []CellMeta      `json:"cells"`
	Alternate *AlternateBoard `json:"alternate,omitempty"`
	Gate      *GateResult     `json:"gate,omitempty"`
}

// AnnualReading is the coarse yearly advice for one octant.
type AnnualReading struct {
	Period          int    `json:"period"`
	AnnualStar      int    `json:"annualStar"`
	DirectionAdvice string `json:"directionAdvice"`
	StarMeaning     string `json:"starMeaning"`
}

// Chart is a persisted chart query. Results are recomputed on load.
type Chart struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	Year      int     `json:"year"`
	Facing    float64 `json:"facing"`
	CreatedAt int64   `json:"createdAt,omitempty"`
}

// ChartMeta is a lightweight listing entry.
type ChartMeta struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Year      int     `json:"year"`
	Facing    float64 `json:"facing"`
	CreatedAt int64   `json:"createdAt"`
}

// SweepEntry summarises the chart drawn on one mountain's centre line.
type SweepEntry struct {
	Mountain    string      `json:"mountain"`
	Label       string      `json:"label"`
	Center      float64     `json:"center"`
	Sitting     string      `json:"sitting"`
	FacingStar  int         `json:"facingStar"`
	SittingStar int         `json:"sittingStar"`
	Gate        *GateResult `json:"gate,omitempty"`
}
