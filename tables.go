package divedeco

// GroupEntry maps a bottom time bracket to a repetitive group letter.
type GroupEntry struct {
	Time   Bracket
	Letter string
}

// NoDecoRow is a depth row of the no-decompression table.
//
// Unlimited rows (conventionally 20 fsw and shallower) carry no time limit;
// their NoStopLimit holds the sentinel 9999.
type NoDecoRow struct {
	Depth       Bracket
	Unlimited   bool
	NoStopLimit uint16
	Groups      []GroupEntry // ordered by bottom time
}

// NoDecoTable is the no-decompression limits and repetitive group
// designation table.
type NoDecoTable struct {
	Code string
	Name string
	Rows []NoDecoRow // ordered by depth
}

// RepetGroupRow maps an entry group letter and a surface interval bracket
// to the repetitive letter at the end of the surface interval.
type RepetGroupRow struct {
	GroupLetter string
	Interval    Bracket
	RepetLetter string
}

// RepetGroupTable is the surface interval credit table.
type RepetGroupTable struct {
	Code string
	Name string
	Rows []RepetGroupRow
}

// ResidualNitrogenEntry maps a next-dive depth bracket to a residual
// nitrogen time.
type ResidualNitrogenEntry struct {
	Depth Bracket
	RNT   uint16
}

// ResidualNitrogenRow holds the residual nitrogen times of one repetitive
// letter.
type ResidualNitrogenRow struct {
	RepetLetter string
	Entries     []ResidualNitrogenEntry
}

// ResidualNitrogenTable is the residual nitrogen time table. Note is the
// advisory printed for cells carrying the RNTUndetermined sentinel.
type ResidualNitrogenTable struct {
	Code string
	Name string
	Note string
	Rows []ResidualNitrogenRow
}

// RNTUndetermined is the residual nitrogen time stored for cells the manual
// marks with "**": the residual nitrogen time exceeds what the table can
// express for an unlimited-depth repetitive dive.
const RNTUndetermined uint16 = 9981

// UnlimitedNoStop is the no-stop limit stored for unlimited rows.
const UnlimitedNoStop uint16 = 9999

// DecompressionStop is one scheduled stop.
type DecompressionStop struct {
	Depth uint16 // fsw
	Time  uint16 // minutes
}

// DecompressionProfile is one bottom time row of the air decompression
// table.
//
// Ascent times are kept as the text printed in the manual ("m:ss").
type DecompressionProfile struct {
	Time                Bracket
	AirTAT              string // total ascent time, air decompression
	O2TAT               string // total ascent time, in-water oxygen decompression
	TTFS                string // time to first stop
	ChamberPeriods      float64
	RepetLetter         string
	SurDO2Recommended   bool
	ExceptionalExposure bool
	SurDO2Required      bool
	StrictSurDO2        bool
	AirStops            []DecompressionStop
	O2Stops             []DecompressionStop
}

// IsEmpty is true for the placeholder profile returned when no row matches.
// Every field has to be zero; stop lists may be nil or empty.
func (p DecompressionProfile) IsEmpty() bool {
	return p.Time == Bracket{} &&
		p.AirTAT == "" && p.O2TAT == "" && p.TTFS == "" &&
		p.ChamberPeriods == 0 && p.RepetLetter == "" &&
		!p.SurDO2Recommended && !p.ExceptionalExposure && !p.SurDO2Required && !p.StrictSurDO2 &&
		len(p.AirStops) == 0 && len(p.O2Stops) == 0
}

// DecompressionDepth is a depth block of the air decompression table.
type DecompressionDepth struct {
	Depth    Bracket
	Profiles []DecompressionProfile // ordered by bottom time
}

// DecompressionTable is the air decompression table.
type DecompressionTable struct {
	Code   string
	Name   string
	Depths []DecompressionDepth
}

// Dive is a single dive profile.
type Dive struct {
	Depth      uint16 // fsw
	BottomTime uint16 // minutes
}

// DivePlan is a dive followed by a surface interval and a repetitive dive.
type DivePlan struct {
	Dive
	SurfaceInterval uint16 // minutes
	NextDepth       uint16 // fsw
}
