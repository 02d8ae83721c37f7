package divedeco

// ProfileSelection selects the rule used to match a bottom time against the
// time bracket of a decompression profile row.
type ProfileSelection int

const (
	// SelectBracket matches a row if Min <= bottomTime <= Max.
	SelectBracket ProfileSelection = iota
	// SelectLegacy matches a row if Min <= bottomTime and Max <= bottomTime.
	// This reproduces the selection of the diving-decompression reference
	// library bit for bit. It picks the row preceding the bracketing one
	// and therefore under-reports decompression obligations.
	SelectLegacy
)

func (s ProfileSelection) String() string {
	switch s {
	case SelectBracket:
		return "bracket"
	case SelectLegacy:
		return "legacy"
	}
	return "unknown"
}

type options struct {
	selection ProfileSelection
}

// Option configures a Planner created by LoadTables.
type Option func(*options)

// WithProfileSelection sets the decompression profile selection rule.
func WithProfileSelection(sel ProfileSelection) Option {
	return func(o *options) {
		o.selection = sel
	}
}

// WithLegacyProfileSelection is a shortcut for WithProfileSelection(SelectLegacy).
func WithLegacyProfileSelection() Option {
	return WithProfileSelection(SelectLegacy)
}
