package divedeco

import "errors"

var (
	// ErrMissingTable indicates a table provider returned no table.
	ErrMissingTable = errors.New("divedeco: table missing")
	// ErrEmptyTable indicates a table without any rows.
	ErrEmptyTable = errors.New("divedeco: table has no rows")
	// ErrBadBracket indicates a bracket with Min > Max.
	ErrBadBracket = errors.New("divedeco: malformed bracket")
	// ErrBadLetter indicates a group letter outside of A..Z.
	ErrBadLetter = errors.New("divedeco: malformed group letter")
)
