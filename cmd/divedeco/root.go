package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/divedeco"
	"github.com/npillmayer/divedeco/tableset"
	"github.com/npillmayer/divedeco/usnavy"
	"github.com/spf13/cobra"
)

var gFlags struct {
	tables          string
	legacySelection bool
	debug           bool
}

var rootCmd = &cobra.Command{
	Use:           "divedeco",
	Short:         "US Navy air decompression table lookups",
	Long:          "divedeco resolves air dive profiles against the US Navy Diving Manual rev7 air tables.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initLogger(gFlags.debug)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		syncLogger()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gFlags.tables, "tables", "", "YAML table set description (default: embedded rev7 tables)")
	pf.BoolVar(&gFlags.legacySelection, "legacy-selection", false, "select decompression rows with the legacy rule")
	pf.BoolVar(&gFlags.debug, "debug", false, "enable debug logging")
	rootCmd.AddCommand(ndlCmd, groupCmd, repetCmd, rntCmd, decoCmd, tablesCmd, batchCmd)
}

// planner loads the table set selected by the flags.
func planner() (*divedeco.Planner, error) {
	if gFlags.tables == "" {
		var opts []divedeco.Option
		if gFlags.legacySelection {
			opts = append(opts, divedeco.WithLegacyProfileSelection())
		}
		logger.Debugw("loading embedded tables", "name", usnavy.Name, "legacy", gFlags.legacySelection)
		return usnavy.LoadPlanner(opts...)
	}
	cfg, err := tableset.LoadFile(gFlags.tables)
	if err != nil {
		return nil, err
	}
	if gFlags.legacySelection {
		cfg.LegacyProfileSelection = true
	}
	logger.Debugw("loading table set", "file", gFlags.tables, "name", cfg.Name,
		"legacy", cfg.LegacyProfileSelection)
	return cfg.Planner()
}

// parseArgs converts positional arguments to depths and times.
func parseArgs(args []string, names ...string) ([]uint16, error) {
	values := make([]uint16, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", names[i], arg, err)
		}
		values[i] = uint16(v)
	}
	return values, nil
}
