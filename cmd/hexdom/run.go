package main

import (
	"io"
	"math"

	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/hexdom/dirichlet"
	"github.com/npillmayer/hexdom/hexgrid"
	"github.com/npillmayer/hexdom/shape"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// goldenAngle spaces successive spiral seeds, in radians.
var goldenAngle = math.Pi * (3 - math.Sqrt(5))

func newTraceCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Find and trace the Dirichlet domains of the seed fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd.OutOrStdout(), *s)
		},
	}
	cmd.Flags().IntVar(&s.MaxSteps, "max-steps", s.MaxSteps, "step budget per edge walk (0 = default)")
	cmd.Flags().BoolVar(&s.Spokes, "spokes", s.Spokes, "also trace edges between neighbouring domains")
	return cmd
}

func newContoursCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contours",
		Short: "List the contour cells of the seed fields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runContours(cmd.OutOrStdout(), *s)
		},
	}
	cmd.Flags().Float64Var(&s.Threshold, "threshold", s.Threshold, "contour threshold in [0,1]")
	return cmd
}

// scene builds the grid and one field per seed, falling off with the
// distance to the seed. Seeds placed on hexes use exact squared distances,
// so a hex equidistant to two seeds always goes to the one listed first.
func scene(s settings) (*hexgrid.Grid, [][]float64, error) {
	g, err := hexgrid.NewHexagon(s.Rings, s.Spacing)
	if err != nil {
		return nil, nil, err
	}
	if len(s.SeedHexes) > 0 {
		fields := make([][]float64, len(s.SeedHexes))
		for k, seed := range s.SeedHexes {
			fields[k] = make([]float64, g.Len())
			for i := range fields[k] {
				fields[k][i] = -float64(hexgrid.Dist2(g.Cell(i).Axial, seed))
			}
		}
		return g, fields, nil
	}
	seeds := s.Seeds
	if len(seeds) == 0 {
		seeds = spiral(s.SeedCount, float64(s.Rings)*s.Spacing*math.Sqrt(3)/2)
	}
	fields := make([][]float64, len(seeds))
	for k, seed := range seeds {
		fields[k] = make([]float64, g.Len())
		for i := range fields[k] {
			fields[k][i] = -g.Centre(i).Dist(seed)
		}
	}
	return g, fields, nil
}

// spiral places n seeds on a golden-angle spiral within radius r.
func spiral(n int, r float64) []hexdom.Pair {
	seeds := make([]hexdom.Pair, n)
	turn := hexdom.Rotation(goldenAngle)
	at := hexdom.Identity()
	for k := range seeds {
		rho := 0.9 * r * math.Sqrt((float64(k)+0.5)/float64(n))
		seeds[k] = at.Transform(hexdom.P(rho, 0)).Zap()
		at = at.Combine(turn)
	}
	return seeds
}

func runTrace(w io.Writer, s settings) error {
	g, fields, err := scene(s)
	if err != nil {
		return err
	}
	ids, err := shape.DominantIdentity(fields)
	if err != nil {
		return err
	}
	opts := []dirichlet.Option{dirichlet.WithMaxSteps(s.MaxSteps)}
	if s.Spokes {
		opts = append(opts, dirichlet.WithSpokes())
	}
	r, err := dirichlet.Analyse(g, ids, opts...)
	if err != nil {
		return err
	}
	return writeYAML(w, newTraceReport(g, r))
}

func runContours(w io.Writer, s settings) error {
	g, fields, err := scene(s)
	if err != nil {
		return err
	}
	contours, err := shape.ExtractContours(g, fields, s.Threshold)
	if err != nil {
		return err
	}
	out := contourReport{Cells: g.Len(), Threshold: s.Threshold}
	for k, c := range contours {
		out.Fields = append(out.Fields, contourDoc{Field: k, Cells: c.Cells()})
	}
	return writeYAML(w, out)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
