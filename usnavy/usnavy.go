/*
Package usnavy provides the US Navy Diving Manual revision 7 air tables,
embedded as JSON documents.

Example usage:

	planner, err := usnavy.Default()
	if err != nil {
		log.Fatal(err)
	}
	ndl := planner.NoDecompressionLimit(35)                           // 232
	group := planner.GroupLetter(divedeco.Dive{Depth: 35, BottomTime: 42}) // D

The embedded cells are unaudited. Only the dives covered by this
package's tests have been compared with the printed manual; every other
cell is unverified, above all the surface interval credits, the residual
nitrogen times and the decompression rows. Do not plan real dive
operations with these tables.
*/
package usnavy

import (
	"embed"
	"sync"

	"github.com/npillmayer/divedeco"
	"github.com/npillmayer/divedeco/airjson"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'divedeco.usnavy'
func tracer() tracing.Trace {
	return tracing.Select("divedeco.usnavy")
}

// Name identifies the embedded table set.
const Name = "usnavy-air-rev7"

//go:embed data/*.json
var tables embed.FS

// Paths locates the embedded table documents within FS.
var Paths = airjson.Paths{
	NoDeco:     "data/usnavy-air-nodeco-rev7.json",
	RepetGroup: "data/usnavy-air-repetgroup-rev7.json",
	RNT:        "data/usnavy-air-rnt-rev7.json",
	Deco:       "data/usnavy-air-deco-rev7.json",
}

// FS returns the embedded table documents.
func FS() embed.FS {
	return tables
}

// Provider returns a table provider for the embedded tables.
func Provider() *airjson.Provider {
	return airjson.FSProvider(tables, Paths)
}

// LoadPlanner loads the embedded tables into a new Planner.
func LoadPlanner(opts ...divedeco.Option) (*divedeco.Planner, error) {
	return divedeco.LoadTables(Name, Provider(), opts...)
}

var defaultPlanner = sync.OnceValues(func() (*divedeco.Planner, error) {
	tracer().Debugf("loading default planner from embedded %s tables", Name)
	return LoadPlanner()
})

// Default returns a process-wide Planner for the embedded tables with the
// default options. The tables are loaded once, on first use.
func Default() (*divedeco.Planner, error) {
	return defaultPlanner()
}
