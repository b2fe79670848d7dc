package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// traceKeys are the trace keys of the hexdom packages.
var traceKeys = []string{
	"hexdom",
	"hexdom.grid",
	"hexdom.shape",
	"hexdom.dirichlet",
	"hexdom.polygon",
}

func newRootCmd() *cobra.Command {
	var configPath, trace string
	s := defaultSettings()

	cmd := &cobra.Command{
		Use:          "hexdom",
		Short:        "hexdom: Dirichlet domains on hexagonal grids",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if configPath != "" {
				// the scene file goes below explicitly set flags
				dto, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				flagged := s
				s.apply(dto)
				keepFlagged(&s, flagged, flags.Changed)
			}
			if flags.Changed("trace") {
				s.Trace = trace
			}
			if err := setTraceLevel(s.Trace); err != nil {
				return err
			}
			return s.validate()
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "scene file (YAML)")
	pf.StringVar(&trace, "trace", s.Trace, "trace level: error, info or debug")
	pf.IntVar(&s.Rings, "rings", s.Rings, "grid radius in hexes")
	pf.Float64Var(&s.Spacing, "spacing", s.Spacing, "distance between hex centres")
	pf.IntVar(&s.SeedCount, "seeds", s.SeedCount, "number of seeds on the golden-angle spiral")

	cmd.AddCommand(newTraceCmd(&s), newContoursCmd(&s))
	return cmd
}

// keepFlagged restores the settings given on the command line after a scene
// file has been applied.
func keepFlagged(s *settings, flagged settings, changed func(string) bool) {
	if changed("rings") {
		s.Rings = flagged.Rings
	}
	if changed("spacing") {
		s.Spacing = flagged.Spacing
	}
	if changed("seeds") {
		s.SeedCount = flagged.SeedCount
		s.Seeds, s.SeedHexes = nil, nil
	}
	if changed("max-steps") {
		s.MaxSteps = flagged.MaxSteps
	}
	if changed("spokes") {
		s.Spokes = flagged.Spokes
	}
	if changed("threshold") {
		s.Threshold = flagged.Threshold
	}
}

func setTraceLevel(level string) error {
	var l tracing.TraceLevel
	switch strings.ToLower(level) {
	case "error":
		l = tracing.LevelError
	case "info":
		l = tracing.LevelInfo
	case "debug":
		l = tracing.LevelDebug
	default:
		return fmt.Errorf("%w: unknown trace level %q", errConfig, level)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	return nil
}
