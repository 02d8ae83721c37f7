package divedeco

// TableStats reports the size of a loaded table set.
type TableStats struct {
	NoDecoRows   int
	GroupEntries int
	RepetRows    int
	RNTRows      int
	RNTEntries   int
	DecoDepths   int
	DecoProfiles int
	MaxDepth     uint16 // deepest depth of the no-decompression table
}

// Rows returns the number of leaf rows over all four tables.
func (s TableStats) Rows() int {
	return s.GroupEntries + s.RepetRows + s.RNTEntries + s.DecoProfiles
}

// Stats reports table sizes.
func (p *Planner) Stats() TableStats {
	if p == nil || p.nodeco == nil {
		return TableStats{}
	}
	stats := TableStats{
		NoDecoRows: len(p.nodeco.Rows),
		RepetRows:  len(p.repet.Rows),
		RNTRows:    len(p.rnt.Rows),
		DecoDepths: len(p.deco.Depths),
		MaxDepth:   p.maxDepth,
	}
	for _, row := range p.nodeco.Rows {
		stats.GroupEntries += len(row.Groups)
	}
	for _, row := range p.rnt.Rows {
		stats.RNTEntries += len(row.Entries)
	}
	for _, block := range p.deco.Depths {
		stats.DecoProfiles += len(block.Profiles)
	}
	return stats
}
