package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/divedeco"
	"github.com/npillmayer/divedeco/airjson"
	"github.com/npillmayer/divedeco/usnavy"
	"github.com/spf13/cobra"
)

var decoJSON bool
var tablesPrefix string

var (
	ndlCmd = &cobra.Command{
		Use:   "ndl DEPTH",
		Short: "no-decompression limit for a depth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "depth")
			if err != nil {
				return err
			}
			p, err := planner()
			if err != nil {
				return err
			}
			ndl := p.NoDecompressionLimit(v[0])
			switch ndl {
			case 0:
				fmt.Fprintf(cmd.OutOrStdout(), "%d fsw: outside of the no-decompression table\n", v[0])
			case divedeco.UnlimitedNoStop:
				fmt.Fprintf(cmd.OutOrStdout(), "%d fsw: unlimited\n", v[0])
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%d fsw: %d min\n", v[0], ndl)
			}
			return nil
		},
	}

	groupCmd = &cobra.Command{
		Use:   "group DEPTH BOTTOMTIME",
		Short: "repetitive group letter of a dive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "depth", "bottom time")
			if err != nil {
				return err
			}
			p, err := planner()
			if err != nil {
				return err
			}
			g := p.GroupLetter(divedeco.Dive{Depth: v[0], BottomTime: v[1]})
			if g.Source == divedeco.FromOverride {
				logger.Infow("shallow long-dive exception applied", "depth", v[0], "bottomTime", v[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), g)
			return nil
		},
	}

	repetCmd = &cobra.Command{
		Use:   "repet DEPTH BOTTOMTIME SURFACEINTERVAL",
		Short: "repetitive letter after a surface interval",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "depth", "bottom time", "surface interval")
			if err != nil {
				return err
			}
			p, err := planner()
			if err != nil {
				return err
			}
			letter := p.RepetitiveLetter(divedeco.DivePlan{
				Dive:            divedeco.Dive{Depth: v[0], BottomTime: v[1]},
				SurfaceInterval: v[2],
			})
			if letter == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no repetitive letter tabulated")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), letter)
			return nil
		},
	}

	rntCmd = &cobra.Command{
		Use:   "rnt DEPTH BOTTOMTIME SURFACEINTERVAL NEXTDEPTH",
		Short: "residual nitrogen time for a repetitive dive",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "depth", "bottom time", "surface interval", "next depth")
			if err != nil {
				return err
			}
			p, err := planner()
			if err != nil {
				return err
			}
			r := p.ResidualNitrogen(divedeco.DivePlan{
				Dive:            divedeco.Dive{Depth: v[0], BottomTime: v[1]},
				SurfaceInterval: v[2],
				NextDepth:       v[3],
			})
			out := cmd.OutOrStdout()
			switch {
			case r.RepetLetter == "":
				fmt.Fprintln(out, "no residual nitrogen time tabulated")
			case r.Undetermined():
				fmt.Fprintf(out, "%s: **\n%s\n", r.RepetLetter, r.Note)
			default:
				fmt.Fprintf(out, "%s: %d min\n", r.RepetLetter, r.RNT)
			}
			return nil
		},
	}

	decoCmd = &cobra.Command{
		Use:   "deco DEPTH BOTTOMTIME",
		Short: "air decompression profile of a dive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseArgs(args, "depth", "bottom time")
			if err != nil {
				return err
			}
			p, err := planner()
			if err != nil {
				return err
			}
			prof := p.DecompressionProfile(divedeco.Dive{Depth: v[0], BottomTime: v[1]})
			logger.Debugw("decompression profile", "selection", p.Selection().String(), "empty", prof.IsEmpty())
			if decoJSON {
				return airjson.EncodeProfile(cmd.OutOrStdout(), prof)
			}
			printProfile(cmd, prof)
			return nil
		},
	}

	tablesCmd = &cobra.Command{
		Use:   "tables",
		Short: "list the embedded tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := usnavy.NewRegistry()
			if err != nil {
				return err
			}
			for _, e := range reg.Entries(tablesPrefix) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-26s %-10s %s\n", e.Code, e.Kind, e.Name)
			}
			return nil
		},
	}
)

func init() {
	decoCmd.Flags().BoolVar(&decoJSON, "json", false, "print the profile as JSON")
	tablesCmd.Flags().StringVar(&tablesPrefix, "prefix", "", "list only table codes with this prefix")
}

func printProfile(cmd *cobra.Command, prof divedeco.DecompressionProfile) {
	out := cmd.OutOrStdout()
	if prof.IsEmpty() {
		fmt.Fprintln(out, "no decompression profile tabulated")
		return
	}
	fmt.Fprintf(out, "bottom time %d-%d min, repetitive group %q\n", prof.Time.Min, prof.Time.Max, prof.RepetLetter)
	fmt.Fprintf(out, "time to first stop %s, total ascent air %s / O2 %s, chamber periods %.1f\n",
		prof.TTFS, prof.AirTAT, prof.O2TAT, prof.ChamberPeriods)
	fmt.Fprintf(out, "air stops: %s\n", formatStops(prof.AirStops))
	fmt.Fprintf(out, "O2 stops:  %s\n", formatStops(prof.O2Stops))
	var flags []string
	if prof.SurDO2Recommended {
		flags = append(flags, "SurDO2 recommended")
	}
	if prof.SurDO2Required {
		flags = append(flags, "SurDO2 required")
	}
	if prof.StrictSurDO2 {
		flags = append(flags, "strict SurDO2")
	}
	if prof.ExceptionalExposure {
		flags = append(flags, "exceptional exposure")
	}
	if len(flags) > 0 {
		fmt.Fprintf(out, "advisories: %s\n", strings.Join(flags, ", "))
	}
}

func formatStops(stops []divedeco.DecompressionStop) string {
	if len(stops) == 0 {
		return "none"
	}
	parts := make([]string, len(stops))
	for i, s := range stops {
		parts[i] = fmt.Sprintf("%d fsw %d min", s.Depth, s.Time)
	}
	return strings.Join(parts, ", ")
}
