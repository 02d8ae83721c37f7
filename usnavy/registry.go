package usnavy

import (
	"fmt"
	"sort"

	"github.com/derekparker/trie"
)

// Kind names the role of a table within a table set.
type Kind string

const (
	KindNoDeco     Kind = "nodeco"     // no-decompression limits and group letters
	KindRepetGroup Kind = "repetgroup" // surface interval credits
	KindRNT        Kind = "rnt"        // residual nitrogen times
	KindDeco       Kind = "deco"       // air decompression profiles
)

// Entry describes one embedded table document.
type Entry struct {
	Code string
	Name string
	Kind Kind
	Path string
}

// Registry indexes the embedded tables by table code.
type Registry struct {
	codes *trie.Trie
}

// NewRegistry reads the headers of all embedded table documents.
func NewRegistry() (*Registry, error) {
	provider := Provider()
	reg := &Registry{codes: trie.New()}
	for _, doc := range []struct {
		kind Kind
		path string
	}{
		{KindNoDeco, Paths.NoDeco},
		{KindRepetGroup, Paths.RepetGroup},
		{KindRNT, Paths.RNT},
		{KindDeco, Paths.Deco},
	} {
		h, err := provider.Header(doc.path)
		if err != nil {
			return nil, fmt.Errorf("usnavy: reading header of %s: %w", doc.path, err)
		}
		if _, dup := reg.codes.Find(h.Code); dup {
			return nil, fmt.Errorf("usnavy: duplicate table code %q in %s", h.Code, doc.path)
		}
		reg.codes.Add(h.Code, Entry{Code: h.Code, Name: h.Name, Kind: doc.kind, Path: doc.path})
	}
	tracer().Infof("registry holds %d tables", len(reg.codes.Keys()))
	return reg, nil
}

// Lookup finds a table by its exact code.
func (reg *Registry) Lookup(code string) (Entry, bool) {
	node, found := reg.codes.Find(code)
	if !found {
		return Entry{}, false
	}
	entry, ok := node.Meta().(Entry)
	return entry, ok
}

// Codes lists the table codes starting with prefix, sorted. An empty prefix
// lists all codes.
func (reg *Registry) Codes(prefix string) []string {
	var codes []string
	if prefix == "" {
		codes = reg.codes.Keys()
	} else {
		codes = reg.codes.PrefixSearch(prefix)
	}
	sort.Strings(codes)
	return codes
}

// Entries returns the entries of all codes starting with prefix.
func (reg *Registry) Entries(prefix string) []Entry {
	codes := reg.Codes(prefix)
	entries := make([]Entry, 0, len(codes))
	for _, code := range codes {
		if e, ok := reg.Lookup(code); ok {
			entries = append(entries, e)
		}
	}
	return entries
}
