package divedeco

import "fmt"

// Bracket is a closed interval over depth (fsw) or time (minutes).
type Bracket struct {
	Min uint16
	Max uint16
}

// Contains reports whether Min <= v <= Max.
//
// The result is undefined for malformed brackets (Min > Max); LoadTables
// rejects those.
func (b Bracket) Contains(v uint16) bool {
	return b.Min <= v && v <= b.Max
}

// Valid reports whether the bracket is well formed.
func (b Bracket) Valid() bool {
	return b.Min <= b.Max
}

func (b Bracket) String() string {
	return fmt.Sprintf("[%d..%d]", b.Min, b.Max)
}
