/*
Package airjson reads and writes air dive tables as JSON documents.

The document layout is the one of the diving-decompression JSON tables:
every table has a table_code, a table_name and a table_data array, e.g.

	{
	  "table_code": "usn-air-nodeco-rev7",
	  "table_name": "No-Decompression Limits ...",
	  "table_data": [
	    { "min_fsw": 0, "max_fsw": 10, "unlimited": true, "no_stop_limit": 9999,
	      "values": [ { "group_letter": "A", "min_time": 0, "max_time": 57 }, ... ] },
	    ...
	  ]
	}

Decoding is format-only: bracket and letter checks are done by
divedeco.LoadTables.
*/
package airjson

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/npillmayer/divedeco"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'divedeco.airjson'
func tracer() tracing.Trace {
	return tracing.Select("divedeco.airjson")
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Header identifies a table document.
type Header struct {
	Code string `json:"table_code"`
	Name string `json:"table_name"`
}

type groupDoc struct {
	GroupLetter string `json:"group_letter"`
	MinTime     uint16 `json:"min_time"`
	MaxTime     uint16 `json:"max_time"`
}

type nodecoRowDoc struct {
	MinFSW      uint16     `json:"min_fsw"`
	MaxFSW      uint16     `json:"max_fsw"`
	Unlimited   bool       `json:"unlimited"`
	NoStopLimit uint16     `json:"no_stop_limit"`
	Values      []groupDoc `json:"values"`
}

type nodecoDoc struct {
	Header
	Data []nodecoRowDoc `json:"table_data"`
}

type repetRowDoc struct {
	GroupLetter string `json:"group_letter"`
	MinTime     uint16 `json:"min_time"`
	MaxTime     uint16 `json:"max_time"`
	RepetLetter string `json:"repet_letter"`
}

type repetDoc struct {
	Header
	Data []repetRowDoc `json:"table_data"`
}

type rntEntryDoc struct {
	MinDepth uint16 `json:"min_depth"`
	MaxDepth uint16 `json:"max_depth"`
	RNT      uint16 `json:"rnt"`
}

type rntRowDoc struct {
	RepetLetter string        `json:"repet_letter"`
	RNT         []rntEntryDoc `json:"rnt"`
}

type rntDoc struct {
	Header
	Note string      `json:"table_note_9981"`
	Data []rntRowDoc `json:"table_data"`
}

type stopDoc struct {
	Depth uint16 `json:"depth"`
	Time  uint16 `json:"time"`
}

type decoRowDoc struct {
	MinTime             uint16    `json:"min_time"`
	MaxTime             uint16    `json:"max_time"`
	AirTAT              string    `json:"air_tat"`
	O2TAT               string    `json:"o2_tat"`
	TTFS                string    `json:"ttfs"`
	O2CP                float64   `json:"o2cp"`
	RepetLetter         string    `json:"repetgroup_letter"`
	SurDO2Recommended   bool      `json:"surdo2_recommended"`
	ExceptionalExposure bool      `json:"exceptional_exposure"`
	SurDO2Required      bool      `json:"surdo2_required"`
	StrictSurDO2        bool      `json:"strict_surdo2"`
	AirStops            []stopDoc `json:"air_deco_stops"`
	O2Stops             []stopDoc `json:"o2_deco_stops"`
}

type decoDepthDoc struct {
	MinFSW uint16       `json:"min_fsw"`
	MaxFSW uint16       `json:"max_fsw"`
	Rows   []decoRowDoc `json:"rows"`
}

type decoDoc struct {
	Header
	Data []decoDepthDoc `json:"table_data"`
}

func decode(kind string, r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("airjson: decoding %s table: %w", kind, err)
	}
	return nil
}

// DecodeHeader reads only the identity fields of a table document.
func DecodeHeader(r io.Reader) (Header, error) {
	var h Header
	err := decode("any", r, &h)
	return h, err
}

// DecodeNoDeco reads a no-decompression table document.
func DecodeNoDeco(r io.Reader) (*divedeco.NoDecoTable, error) {
	var doc nodecoDoc
	if err := decode("no-decompression", r, &doc); err != nil {
		return nil, err
	}
	t := &divedeco.NoDecoTable{
		Code: doc.Code,
		Name: doc.Name,
		Rows: make([]divedeco.NoDecoRow, 0, len(doc.Data)),
	}
	for _, row := range doc.Data {
		ndr := divedeco.NoDecoRow{
			Depth:       divedeco.Bracket{Min: row.MinFSW, Max: row.MaxFSW},
			Unlimited:   row.Unlimited,
			NoStopLimit: row.NoStopLimit,
			Groups:      make([]divedeco.GroupEntry, 0, len(row.Values)),
		}
		for _, g := range row.Values {
			ndr.Groups = append(ndr.Groups, divedeco.GroupEntry{
				Time:   divedeco.Bracket{Min: g.MinTime, Max: g.MaxTime},
				Letter: g.GroupLetter,
			})
		}
		t.Rows = append(t.Rows, ndr)
	}
	tracer().Debugf("decoded %s with %d rows", t.Code, len(t.Rows))
	return t, nil
}

// DecodeRepetGroup reads a surface interval credit table document.
func DecodeRepetGroup(r io.Reader) (*divedeco.RepetGroupTable, error) {
	var doc repetDoc
	if err := decode("repetitive group", r, &doc); err != nil {
		return nil, err
	}
	t := &divedeco.RepetGroupTable{
		Code: doc.Code,
		Name: doc.Name,
		Rows: make([]divedeco.RepetGroupRow, 0, len(doc.Data)),
	}
	for _, row := range doc.Data {
		t.Rows = append(t.Rows, divedeco.RepetGroupRow{
			GroupLetter: row.GroupLetter,
			Interval:    divedeco.Bracket{Min: row.MinTime, Max: row.MaxTime},
			RepetLetter: row.RepetLetter,
		})
	}
	tracer().Debugf("decoded %s with %d rows", t.Code, len(t.Rows))
	return t, nil
}

// DecodeRNT reads a residual nitrogen time table document.
func DecodeRNT(r io.Reader) (*divedeco.ResidualNitrogenTable, error) {
	var doc rntDoc
	if err := decode("residual nitrogen", r, &doc); err != nil {
		return nil, err
	}
	t := &divedeco.ResidualNitrogenTable{
		Code: doc.Code,
		Name: doc.Name,
		Note: doc.Note,
		Rows: make([]divedeco.ResidualNitrogenRow, 0, len(doc.Data)),
	}
	for _, row := range doc.Data {
		rr := divedeco.ResidualNitrogenRow{
			RepetLetter: row.RepetLetter,
			Entries:     make([]divedeco.ResidualNitrogenEntry, 0, len(row.RNT)),
		}
		for _, e := range row.RNT {
			rr.Entries = append(rr.Entries, divedeco.ResidualNitrogenEntry{
				Depth: divedeco.Bracket{Min: e.MinDepth, Max: e.MaxDepth},
				RNT:   e.RNT,
			})
		}
		t.Rows = append(t.Rows, rr)
	}
	tracer().Debugf("decoded %s with %d rows", t.Code, len(t.Rows))
	return t, nil
}

// DecodeDeco reads an air decompression table document.
func DecodeDeco(r io.Reader) (*divedeco.DecompressionTable, error) {
	var doc decoDoc
	if err := decode("decompression", r, &doc); err != nil {
		return nil, err
	}
	t := &divedeco.DecompressionTable{
		Code:   doc.Code,
		Name:   doc.Name,
		Depths: make([]divedeco.DecompressionDepth, 0, len(doc.Data)),
	}
	for _, block := range doc.Data {
		d := divedeco.DecompressionDepth{
			Depth:    divedeco.Bracket{Min: block.MinFSW, Max: block.MaxFSW},
			Profiles: make([]divedeco.DecompressionProfile, 0, len(block.Rows)),
		}
		for _, row := range block.Rows {
			d.Profiles = append(d.Profiles, divedeco.DecompressionProfile{
				Time:                divedeco.Bracket{Min: row.MinTime, Max: row.MaxTime},
				AirTAT:              row.AirTAT,
				O2TAT:               row.O2TAT,
				TTFS:                row.TTFS,
				ChamberPeriods:      row.O2CP,
				RepetLetter:         row.RepetLetter,
				SurDO2Recommended:   row.SurDO2Recommended,
				ExceptionalExposure: row.ExceptionalExposure,
				SurDO2Required:      row.SurDO2Required,
				StrictSurDO2:        row.StrictSurDO2,
				AirStops:            fromStopDocs(row.AirStops),
				O2Stops:             fromStopDocs(row.O2Stops),
			})
		}
		t.Depths = append(t.Depths, d)
	}
	tracer().Debugf("decoded %s with %d depth blocks", t.Code, len(t.Depths))
	return t, nil
}

func fromStopDocs(docs []stopDoc) []divedeco.DecompressionStop {
	stops := make([]divedeco.DecompressionStop, len(docs))
	for i, s := range docs {
		stops[i] = divedeco.DecompressionStop{Depth: s.Depth, Time: s.Time}
	}
	return stops
}

func toStopDocs(stops []divedeco.DecompressionStop) []stopDoc {
	docs := make([]stopDoc, len(stops))
	for i, s := range stops {
		docs[i] = stopDoc{Depth: s.Depth, Time: s.Time}
	}
	return docs
}

// EncodeProfile writes a decompression profile as a JSON row in table
// document layout, indented for display.
func EncodeProfile(w io.Writer, p divedeco.DecompressionProfile) error {
	row := decoRowDoc{
		MinTime:             p.Time.Min,
		MaxTime:             p.Time.Max,
		AirTAT:              p.AirTAT,
		O2TAT:               p.O2TAT,
		TTFS:                p.TTFS,
		O2CP:                p.ChamberPeriods,
		RepetLetter:         p.RepetLetter,
		SurDO2Recommended:   p.SurDO2Recommended,
		ExceptionalExposure: p.ExceptionalExposure,
		SurDO2Required:      p.SurDO2Required,
		StrictSurDO2:        p.StrictSurDO2,
		AirStops:            toStopDocs(p.AirStops),
		O2Stops:             toStopDocs(p.O2Stops),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(row)
}
