// Package tableset loads table set descriptions from YAML files.
//
// A table set names the four JSON table documents to plan with, which makes
// it possible to run the planner on tables other than the embedded rev7 set:
//
//	name: custom-rev7
//	tables:
//	  nodeco: nodeco.json
//	  repetgroup: repetgroup.json
//	  rnt: rnt.json
//	  deco: deco.json
//	legacyProfileSelection: false
//
// Relative table paths are resolved against the directory of the YAML file.
package tableset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/divedeco"
	"github.com/npillmayer/divedeco/airjson"
	validator "gopkg.in/validator.v2"
	yaml "gopkg.in/yaml.v2"
)

var errNoFilesToLoad = errors.New("tableset: attempt to load configuration with no files")

// Tables names the JSON documents of a table set.
type Tables struct {
	NoDeco     string `yaml:"nodeco" validate:"nonzero"`
	RepetGroup string `yaml:"repetgroup" validate:"nonzero"`
	RNT        string `yaml:"rnt" validate:"nonzero"`
	Deco       string `yaml:"deco" validate:"nonzero"`
}

// Config describes a table set.
type Config struct {
	Name                   string `yaml:"name" validate:"nonzero"`
	Tables                 Tables `yaml:"tables"`
	LegacyProfileSelection bool   `yaml:"legacyProfileSelection"`
}

// layer is a single YAML file. Unset properties leave earlier values alone.
type layer struct {
	Name                   string `yaml:"name"`
	Tables                 Tables `yaml:"tables"`
	LegacyProfileSelection *bool  `yaml:"legacyProfileSelection"`
}

// LoadFile loads a config from a file.
func LoadFile(fname string) (*Config, error) {
	return LoadFiles(fname)
}

// LoadFiles loads a config from a list of files. If a property is present in
// multiple files, the value from the last file is applied. Relative table
// paths are resolved against the directory of the file that set them.
// Validation is done after merging all values.
func LoadFiles(fnames ...string) (*Config, error) {
	if len(fnames) == 0 {
		return nil, errNoFilesToLoad
	}
	cfg := &Config{}
	for _, fname := range fnames {
		data, err := os.ReadFile(fname)
		if err != nil {
			return nil, err
		}
		var l layer
		if err := yaml.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("tableset: %s: %w", fname, err)
		}
		cfg.merge(l, filepath.Dir(fname))
	}
	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("tableset: %w", err)
	}
	return cfg, nil
}

func (c *Config) merge(l layer, dir string) {
	resolve := func(dst *string, path string) {
		if path == "" {
			return
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		*dst = path
	}
	if l.Name != "" {
		c.Name = l.Name
	}
	resolve(&c.Tables.NoDeco, l.Tables.NoDeco)
	resolve(&c.Tables.RepetGroup, l.Tables.RepetGroup)
	resolve(&c.Tables.RNT, l.Tables.RNT)
	resolve(&c.Tables.Deco, l.Tables.Deco)
	if l.LegacyProfileSelection != nil {
		c.LegacyProfileSelection = *l.LegacyProfileSelection
	}
}

// Provider returns a table provider reading the configured documents.
func (c *Config) Provider() divedeco.TableProvider {
	return airjson.FileProvider(airjson.Paths{
		NoDeco:     c.Tables.NoDeco,
		RepetGroup: c.Tables.RepetGroup,
		RNT:        c.Tables.RNT,
		Deco:       c.Tables.Deco,
	})
}

// Options returns the planner options set by the config.
func (c *Config) Options() []divedeco.Option {
	var opts []divedeco.Option
	if c.LegacyProfileSelection {
		opts = append(opts, divedeco.WithLegacyProfileSelection())
	}
	return opts
}

// Planner loads the configured table set.
func (c *Config) Planner() (*divedeco.Planner, error) {
	return divedeco.LoadTables(c.Name, c.Provider(), c.Options()...)
}
