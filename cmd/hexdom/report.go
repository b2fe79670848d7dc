package main

import (
	"math"

	"github.com/npillmayer/hexdom"
	"github.com/npillmayer/hexdom/dirichlet"
	"github.com/npillmayer/hexdom/hexgrid"
)

type traceReport struct {
	Cells      int          `yaml:"cells"`
	Candidates int          `yaml:"candidates"`
	Skipped    int          `yaml:"skipped"`
	Domains    []domainDoc  `yaml:"domains"`
	Failures   []failureDoc `yaml:"failures,omitempty"`
}

type domainDoc struct {
	ID       float64      `yaml:"id"`
	Vertices [][2]float64 `yaml:"vertices,flow"`
	Area     float64      `yaml:"area"`
	Hexes    float64      `yaml:"hexes"` // area in units of one hex
	Centroid [2]float64   `yaml:"centroid,flow"`
	Spokes   int          `yaml:"spokes,omitempty"`
}

type failureDoc struct {
	Start   [2]float64 `yaml:"start,flow"`
	ID      float64    `yaml:"id"`
	Kind    string     `yaml:"kind"`
	Visited int        `yaml:"visited"`
	Cause   string     `yaml:"cause"`
}

type contourReport struct {
	Cells     int          `yaml:"cells"`
	Threshold float64      `yaml:"threshold"`
	Fields    []contourDoc `yaml:"fields"`
}

type contourDoc struct {
	Field int   `yaml:"field"`
	Cells []int `yaml:"cells,flow"`
}

func xy(p hexdom.Pair) [2]float64 {
	p = p.Zap()
	return [2]float64{p.X(), p.Y()}
}

func newTraceReport(g *hexgrid.Grid, r *dirichlet.Report) traceReport {
	hexArea := g.D() * g.D() * math.Sqrt(3) / 2
	out := traceReport{
		Cells:      g.Len(),
		Candidates: r.Candidates,
		Skipped:    r.Skipped,
		Domains:    []domainDoc{},
	}
	for _, d := range r.Domains {
		doc := domainDoc{
			ID:       d.ID,
			Area:     d.Area(),
			Centroid: xy(d.Centroid()),
		}
		doc.Hexes = doc.Area / hexArea
		for _, v := range d.Vertices {
			doc.Vertices = append(doc.Vertices, xy(v.Coord))
		}
		for _, sp := range d.Spokes {
			if sp != nil {
				doc.Spokes++
			}
		}
		out.Domains = append(out.Domains, doc)
	}
	for _, f := range r.Failures {
		out.Failures = append(out.Failures, failureDoc{
			Start:   xy(f.Start.Coord),
			ID:      f.Start.ID,
			Kind:    f.Kind.String(),
			Visited: f.Visited,
			Cause:   f.Err.Error(),
		})
	}
	return out
}
