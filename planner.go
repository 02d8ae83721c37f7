package divedeco

// Planner resolves dive profiles against a validated table set.
//
// All lookups scan the relevant table in table order and let the last
// matching row determine the result. Table rows are expected to be
// non-overlapping, so in correct data this coincides with the first match.
//
// A Planner is immutable and safe for concurrent use.
type Planner struct {
	nodeco     *NoDecoTable
	repet      *RepetGroupTable
	rnt        *ResidualNitrogenTable
	deco       *DecompressionTable
	opts       options
	maxDepth   uint16
	Identifier string // Identifies the table set
}

// Source classifies how a group designation was obtained.
type Source int

const (
	// FromTable: a group entry of the no-decompression table matched.
	FromTable Source = iota
	// FromOverride: one of the manual's shallow long-dive exceptions applied.
	FromOverride
	// OutOfTimeRange: the dive exceeds the no-decompression limits in time.
	OutOfTimeRange
	// OutOfDepthRange: the dive is deeper than the no-decompression table.
	OutOfDepthRange
)

// Messages reported for dives outside of the no-decompression table.
const (
	MsgOutOfTimeRange  = "this dive is out of the time range for no-decompression air dives"
	MsgOutOfDepthRange = "this dive is out of the depth range for no-decompression air dives"
)

// Designation is the result of a group letter lookup. Out-of-range results
// are classification outcomes, not errors; callers branch on Source.
type Designation struct {
	Letter string // empty for out-of-range designations
	Source Source
}

// OK is true if a group letter has been designated.
func (d Designation) OK() bool {
	return d.Source == FromTable || d.Source == FromOverride
}

// String returns the group letter or the out-of-range message.
func (d Designation) String() string {
	switch d.Source {
	case OutOfTimeRange:
		return MsgOutOfTimeRange
	case OutOfDepthRange:
		return MsgOutOfDepthRange
	}
	return d.Letter
}

// shallowOverride is a manual-documented group letter for shallow dives
// longer than the last tabulated group entry.
type shallowOverride struct {
	depthAbove, depthMax uint16 // depthAbove < depth <= depthMax
	timeAbove            uint16 // bottomTime > timeAbove
	letter               string
}

var shallowOverrides = []shallowOverride{
	{depthAbove: 0, depthMax: 10, timeAbove: 462, letter: "F"},
	{depthAbove: 10, depthMax: 15, timeAbove: 449, letter: "I"},
	{depthAbove: 15, depthMax: 20, timeAbove: 461, letter: "L"},
}

// NoDecompressionLimit returns the no-stop limit in minutes for a depth in
// fsw. Unlimited depths return UnlimitedNoStop, depths outside of the table
// return 0.
func (p *Planner) NoDecompressionLimit(depth uint16) uint16 {
	var ndl uint16
	for _, row := range p.nodeco.Rows {
		if row.Depth.Contains(depth) {
			ndl = row.NoStopLimit
		}
	}
	return ndl
}

// tabulatedGroup scans the no-decompression table for the group letter of
// a dive. It does not apply any overrides and returns "" if nothing matches.
func (p *Planner) tabulatedGroup(d Dive) string {
	var letter string
	for _, row := range p.nodeco.Rows {
		if !row.Depth.Contains(d.Depth) {
			continue
		}
		for _, g := range row.Groups {
			if g.Time.Contains(d.BottomTime) {
				letter = g.Letter
			}
		}
	}
	return letter
}

// GroupLetter returns the repetitive group designation of a dive.
//
// If no group entry matches, the shallow long-dive exceptions of the manual
// apply:
//
//	0 < depth <= 10 fsw and bottom time > 462 min  =>  F
//	10 < depth <= 15 fsw and bottom time > 449 min  =>  I
//	15 < depth <= 20 fsw and bottom time > 461 min  =>  L
//
// Other dives are out of time range, or out of depth range if deeper than
// the deepest row of the no-decompression table.
func (p *Planner) GroupLetter(d Dive) Designation {
	if letter := p.tabulatedGroup(d); letter != "" {
		return Designation{Letter: letter, Source: FromTable}
	}
	for _, o := range shallowOverrides {
		if d.Depth > o.depthAbove && d.Depth <= o.depthMax && d.BottomTime > o.timeAbove {
			tracer().Debugf("dive %d fsw/%d min: shallow exception %s", d.Depth, d.BottomTime, o.letter)
			return Designation{Letter: o.letter, Source: FromOverride}
		}
	}
	if d.Depth <= p.maxDepth {
		return Designation{Source: OutOfTimeRange}
	}
	return Designation{Source: OutOfDepthRange}
}

// RepetitiveLetter returns the repetitive letter after the surface interval
// of a dive plan, or "" if the surface interval is outside of all tabulated
// brackets for the dive's group letter.
//
// The group letter is taken from the no-decompression table only; the
// shallow long-dive exceptions of GroupLetter are not applied.
func (p *Planner) RepetitiveLetter(plan DivePlan) string {
	group := p.tabulatedGroup(plan.Dive)
	if group == "" {
		return ""
	}
	return p.repetLetter(group, plan.SurfaceInterval)
}

func (p *Planner) repetLetter(group string, interval uint16) string {
	var letter string
	for _, row := range p.repet.Rows {
		if row.GroupLetter == group && row.Interval.Contains(interval) {
			letter = row.RepetLetter
		}
	}
	return letter
}

// ResidualNitrogenTime returns the residual nitrogen time in minutes to add
// to the repetitive dive of a dive plan. Any break in the lookup chain
// yields 0.
func (p *Planner) ResidualNitrogenTime(plan DivePlan) uint16 {
	return p.residualNitrogen(p.RepetitiveLetter(plan), plan.NextDepth)
}

func (p *Planner) residualNitrogen(repet string, nextDepth uint16) uint16 {
	if repet == "" {
		return 0
	}
	var rnt uint16
	for _, row := range p.rnt.Rows {
		if row.RepetLetter != repet {
			continue
		}
		for _, e := range row.Entries {
			if e.Depth.Contains(nextDepth) {
				rnt = e.RNT
			}
		}
	}
	return rnt
}

// RNTReport is the outcome of a residual nitrogen lookup.
type RNTReport struct {
	RepetLetter string
	RNT         uint16
	Note        string // set if RNT is RNTUndetermined
}

// Undetermined is true if the table cannot express the residual nitrogen
// time of the repetitive dive.
func (r RNTReport) Undetermined() bool {
	return r.RNT == RNTUndetermined
}

// ResidualNitrogen resolves a dive plan to its repetitive letter and
// residual nitrogen time, attaching the table note for undetermined cells.
func (p *Planner) ResidualNitrogen(plan DivePlan) RNTReport {
	report := RNTReport{RepetLetter: p.RepetitiveLetter(plan)}
	report.RNT = p.residualNitrogen(report.RepetLetter, plan.NextDepth)
	if report.Undetermined() {
		report.Note = p.rnt.Note
	}
	return report
}

// Note returns the advisory note of the residual nitrogen table.
func (p *Planner) Note() string {
	return p.rnt.Note
}

// Selection returns the decompression profile selection rule in effect.
func (p *Planner) Selection() ProfileSelection {
	return p.opts.selection
}

// DecompressionProfile returns the air decompression profile for a dive.
//
// Rows are matched with the planner's ProfileSelection rule; the default
// SelectBracket rule matches Min <= bottom time <= Max. If no row matches,
// an empty placeholder profile (zero values, empty stop lists) is returned.
func (p *Planner) DecompressionProfile(d Dive) DecompressionProfile {
	var match *DecompressionProfile
	for i := range p.deco.Depths {
		block := &p.deco.Depths[i]
		if !block.Depth.Contains(d.Depth) {
			continue
		}
		for j := range block.Profiles {
			if p.selects(block.Profiles[j].Time, d.BottomTime) {
				match = &block.Profiles[j]
			}
		}
	}
	if match == nil {
		return DecompressionProfile{
			AirStops: []DecompressionStop{},
			O2Stops:  []DecompressionStop{},
		}
	}
	return match.clone()
}

func (p *Planner) selects(b Bracket, bottomTime uint16) bool {
	switch p.opts.selection {
	case SelectLegacy:
		return b.Min <= bottomTime && b.Max <= bottomTime
	default:
		return b.Contains(bottomTime)
	}
}

// clone copies the stop lists, so callers cannot alter the table.
func (prof *DecompressionProfile) clone() DecompressionProfile {
	c := *prof
	c.AirStops = make([]DecompressionStop, len(prof.AirStops))
	copy(c.AirStops, prof.AirStops)
	c.O2Stops = make([]DecompressionStop, len(prof.O2Stops))
	copy(c.O2Stops, prof.O2Stops)
	return c
}
