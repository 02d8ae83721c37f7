package divedeco

import (
	"fmt"
)

// TableProvider supplies the four typed reference tables.
//
// Storage formats are intentionally outside the base package. Use adapters
// like package airjson (JSON documents) or package usnavy (embedded rev7
// tables) to feed LoadTables.
type TableProvider interface {
	NoDecoTable() (*NoDecoTable, error)
	RepetGroupTable() (*RepetGroupTable, error)
	ResidualNitrogenTable() (*ResidualNitrogenTable, error)
	DecompressionTable() (*DecompressionTable, error)
}

// LoadTables fetches the tables from src, validates them and returns a
// Planner on top of them.
//
// Malformed or missing table data is the only failure class of this
// package and is reported here, before any query runs. The tables must not
// be modified after LoadTables returns.
func LoadTables(name string, src TableProvider, opts ...Option) (planner *Planner, err error) {
	if src == nil {
		return nil, fmt.Errorf("table set %q: %w", name, ErrMissingTable)
	}
	planner = &Planner{Identifier: fmt.Sprintf("tables: %s", name)}
	for _, opt := range opts {
		opt(&planner.opts)
	}
	if planner.nodeco, err = src.NoDecoTable(); err != nil {
		return nil, fmt.Errorf("table set %q: no-decompression table: %w", name, err)
	}
	if planner.repet, err = src.RepetGroupTable(); err != nil {
		return nil, fmt.Errorf("table set %q: repetitive group table: %w", name, err)
	}
	if planner.rnt, err = src.ResidualNitrogenTable(); err != nil {
		return nil, fmt.Errorf("table set %q: residual nitrogen table: %w", name, err)
	}
	if planner.deco, err = src.DecompressionTable(); err != nil {
		return nil, fmt.Errorf("table set %q: decompression table: %w", name, err)
	}
	if err = planner.validate(); err != nil {
		tracer().Errorf("rejecting table set %q: %v", name, err)
		return nil, fmt.Errorf("table set %q: %w", name, err)
	}
	assert(planner.nodeco != nil && len(planner.nodeco.Rows) > 0, "validated table set lacks no-decompression rows")
	for _, row := range planner.nodeco.Rows {
		if row.Depth.Max > planner.maxDepth {
			planner.maxDepth = row.Depth.Max
		}
	}
	stats := planner.Stats()
	tracer().Infof("table set %s loaded: nodeco=%d/%d repet=%d rnt=%d/%d deco=%d/%d maxDepth=%d selection=%s",
		name, stats.NoDecoRows, stats.GroupEntries, stats.RepetRows, stats.RNTRows, stats.RNTEntries,
		stats.DecoDepths, stats.DecoProfiles, planner.maxDepth, planner.opts.selection)
	return planner, nil
}

func (p *Planner) validate() error {
	if p.nodeco == nil {
		return fmt.Errorf("no-decompression table: %w", ErrMissingTable)
	}
	if p.repet == nil {
		return fmt.Errorf("repetitive group table: %w", ErrMissingTable)
	}
	if p.rnt == nil {
		return fmt.Errorf("residual nitrogen table: %w", ErrMissingTable)
	}
	if p.deco == nil {
		return fmt.Errorf("decompression table: %w", ErrMissingTable)
	}
	if len(p.nodeco.Rows) == 0 {
		return fmt.Errorf("no-decompression table %s: %w", p.nodeco.Code, ErrEmptyTable)
	}
	for i, row := range p.nodeco.Rows {
		if !row.Depth.Valid() {
			return fmt.Errorf("no-decompression row %d depth %v: %w", i, row.Depth, ErrBadBracket)
		}
		for j, g := range row.Groups {
			if !g.Time.Valid() {
				return fmt.Errorf("no-decompression row %d entry %d time %v: %w", i, j, g.Time, ErrBadBracket)
			}
			if !isLetter(g.Letter) {
				return fmt.Errorf("no-decompression row %d entry %d letter %q: %w", i, j, g.Letter, ErrBadLetter)
			}
		}
	}
	for i, row := range p.repet.Rows {
		if !row.Interval.Valid() {
			return fmt.Errorf("repetitive group row %d interval %v: %w", i, row.Interval, ErrBadBracket)
		}
		if !isLetter(row.GroupLetter) || !isLetter(row.RepetLetter) {
			return fmt.Errorf("repetitive group row %d letters %q/%q: %w", i,
				row.GroupLetter, row.RepetLetter, ErrBadLetter)
		}
	}
	for i, row := range p.rnt.Rows {
		if !isLetter(row.RepetLetter) {
			return fmt.Errorf("residual nitrogen row %d letter %q: %w", i, row.RepetLetter, ErrBadLetter)
		}
		for j, e := range row.Entries {
			if !e.Depth.Valid() {
				return fmt.Errorf("residual nitrogen row %d entry %d depth %v: %w", i, j, e.Depth, ErrBadBracket)
			}
		}
	}
	for i, block := range p.deco.Depths {
		if !block.Depth.Valid() {
			return fmt.Errorf("decompression block %d depth %v: %w", i, block.Depth, ErrBadBracket)
		}
		for j, prof := range block.Profiles {
			if !prof.Time.Valid() {
				return fmt.Errorf("decompression block %d row %d time %v: %w", i, j, prof.Time, ErrBadBracket)
			}
			// exceptional exposure rows carry no repetitive letter
			if prof.RepetLetter != "" && !isLetter(prof.RepetLetter) {
				return fmt.Errorf("decompression block %d row %d letter %q: %w", i, j, prof.RepetLetter, ErrBadLetter)
			}
		}
	}
	return nil
}

func isLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}
