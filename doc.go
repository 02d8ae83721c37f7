/*
Package divedeco plans air dives with the US Navy air decompression tables
(US Navy Diving Manual, revision 7).

It links four reference tables: the no-decompression table, the surface
interval credit (repetitive group) table, the residual nitrogen time table
and the air decompression table. A Planner chains range lookups over them
to turn a dive profile (depth, bottom time, surface interval, next depth)
into a no-decompression limit, a repetitive group letter, a residual
nitrogen time and a decompression stop profile.

Depths are given in feet of sea water (fsw), times in minutes. Every table
bracket is a closed interval.

Table data is not parsed here. Providers (see packages airjson and usnavy)
hand typed tables to LoadTables, which validates them once and returns an
immutable Planner. Queries never fail: a profile outside of the tabulated
guidance resolves to a documented empty value.

The tables are reference data only. Do not use this package to plan real
dive operations without cross-checking every result against the manual.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package divedeco

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'divedeco'
func tracer() tracing.Trace {
	return tracing.Select("divedeco")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
