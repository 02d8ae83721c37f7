package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/npillmayer/divedeco"
	"github.com/spf13/cobra"
)

var batchWorkers int

// batchCmd reads one dive plan per line ("DEPTH BOTTOMTIME SURFACEINTERVAL
// NEXTDEPTH", blank lines and lines starting with '#' are skipped).
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "resolve dive plans read from stdin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var plans []divedeco.DivePlan
		scanner := bufio.NewScanner(cmd.InOrStdin())
		lineno := 0
		for scanner.Scan() {
			lineno++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return fmt.Errorf("line %d: want 4 fields, have %d", lineno, len(fields))
			}
			v, err := parseArgs(fields, "depth", "bottom time", "surface interval", "next depth")
			if err != nil {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
			plans = append(plans, divedeco.DivePlan{
				Dive:            divedeco.Dive{Depth: v[0], BottomTime: v[1]},
				SurfaceInterval: v[2],
				NextDepth:       v[3],
			})
		}
		if err := scanner.Err(); err != nil {
			return err
		}
		p, err := planner()
		if err != nil {
			return err
		}
		results, err := p.ResolveBatch(cmd.Context(), plans, batchWorkers)
		if err != nil {
			return err
		}
		logger.Debugw("batch resolved", "plans", len(results), "workers", batchWorkers)
		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%d\t%d\t%d\t%d\t%d\t%s\t%s\t%d\t%s\n",
				r.Plan.Depth, r.Plan.BottomTime, r.Plan.SurfaceInterval, r.Plan.NextDepth,
				r.NoDecompressionLimit, r.Group.Letter, r.Residual.RepetLetter, r.Residual.RNT,
				r.Profile.AirTAT)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "number of concurrent resolvers (default GOMAXPROCS)")
}
