package dirichlet

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/hexdom"
)

// State is the state of the domain assembler while it traces one domain.
type State int8

const (
	Start   State = iota // no vertex taken yet
	Walking              // walking edges from vertex to vertex
	Closed               // arrived back at the first vertex
	Failed               // gave up on this domain
)

func (s State) String() string {
	switch s {
	case Start:
		return "Start"
	case Walking:
		return "Walking"
	case Closed:
		return "Closed"
	case Failed:
		return "Failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// FailureKind tells why the assembler gave up on a domain.
type FailureKind int8

const (
	StructuralInconsistency FailureKind = iota
	UnmatchedVertex
	BoundaryTermination
	StepBudgetExceeded
	HoleBoundary
)

var failureNames = [...]string{
	"structural-inconsistency",
	"unmatched-vertex",
	"boundary-termination",
	"step-budget-exceeded",
	"hole-boundary",
}

func (k FailureKind) String() string {
	if int(k) < len(failureNames) {
		return failureNames[k]
	}
	return fmt.Sprintf("FailureKind(%d)", int(k))
}

// Failure records an abandoned domain.
type Failure struct {
	Start   Vertex      // vertex the domain was started from
	Kind    FailureKind
	Visited int         // vertices taken before giving up, Start included
	Err     error
}

func (f Failure) Error() string {
	return fmt.Sprintf("domain from %v: %s: %v", f.Start.Coord, f.Kind, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Domain is a closed Dirichlet domain. Edges[i] is the walk path from
// Vertices[i] to Vertices[i+1]; the last edge leads back to Vertices[0]
// and ends with its coordinate.
type Domain struct {
	ID       float64
	Vertices []Vertex
	Edges    [][]hexdom.Pair
	Spokes   [][]hexdom.Pair // spoke i starts at Vertices[i]; nil if not walked
}

// Report is the full result of an analysis.
type Report struct {
	Domains    []Domain
	Failures   []Failure
	Candidates int // size of the candidate vertex pool
	Skipped    int // candidates not eligible as start vertices
}

// --- Options ---------------------------------------------------------------

type config struct {
	maxSteps    int
	spokes      bool
	concurrency int
}

// Option configures an analysis.
type Option func(*config)

// WithMaxSteps bounds the length of a single edge walk. n < 1 selects the
// default.
func WithMaxSteps(n int) Option {
	return func(c *config) {
		c.maxSteps = n
	}
}

// WithSpokes makes the analysis walk, from every vertex of a closed domain,
// the edge between its two neighbouring domains as well. Spoke walks which
// fail are traced and left nil.
func WithSpokes() Option {
	return func(c *config) {
		c.spokes = true
	}
}

// WithConcurrency limits the number of frames AnalyseFrames works on at
// the same time. n < 1 selects runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = n
	}
}

func configure(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// --- Analysis --------------------------------------------------------------

// FindDomains returns the closed Dirichlet domains of an identity field, in
// the order their start vertices appear in the candidate pool.
func FindDomains(g Grid, ids []float64, opts ...Option) ([]Domain, error) {
	r, err := Analyse(g, ids, opts...)
	if err != nil {
		return nil, err
	}
	return r.Domains, nil
}

// Analyse detects candidate vertices and assembles them into domains.
// Domains which cannot be closed are recorded as failures; they never make
// Analyse return an error. Errors are ErrFieldLength and ErrIdentity.
func Analyse(g Grid, ids []float64, opts ...Option) (*Report, error) {
	if len(ids) != g.Len() {
		return nil, fmt.Errorf("%d identities for %d cells: %w", len(ids), g.Len(), ErrFieldLength)
	}
	for i, id := range ids {
		if math.IsNaN(id) || math.IsInf(id, 0) {
			return nil, fmt.Errorf("cell %d: %w", i, ErrIdentity)
		}
	}
	c := configure(opts)
	asm := &assembler{
		g:      g,
		walker: NewWalker(g, ids, c.maxSteps),
		pool:   Candidates(g, ids),
	}
	asm.closed = make([]bool, len(asm.pool))
	asm.run()
	if c.spokes {
		for i := range asm.report.Domains {
			asm.walkSpokes(&asm.report.Domains[i])
		}
	}
	tracer().Infof("%d domains closed, %d abandoned, %d of %d candidates skipped",
		len(asm.report.Domains), len(asm.report.Failures), asm.report.Skipped, len(asm.pool))
	return &asm.report, nil
}

// assembler consumes a candidate pool. A vertex is closed once it has been
// taken into a domain, successful or not, or found ineligible as a start.
type assembler struct {
	g      Grid
	walker *Walker
	pool   []Vertex
	closed []bool
	report Report
}

func (asm *assembler) run() {
	asm.report.Candidates = len(asm.pool)
	for i := range asm.pool {
		if asm.closed[i] {
			continue
		}
		v := asm.pool[i]
		if v.OnBoundary || asm.g.IsBoundary(v.Cell) {
			asm.closed[i] = true
			asm.report.Skipped++
			continue
		}
		if d, fail := asm.trace(i); fail != nil {
			tracer().Infof("%v", fail)
			asm.report.Failures = append(asm.report.Failures, *fail)
		} else {
			tracer().Infof("domain %g closed with %d vertices", d.ID, len(d.Vertices))
			asm.report.Domains = append(asm.report.Domains, d)
		}
	}
}

// trace assembles the domain starting at pool[start].
func (asm *assembler) trace(start int) (Domain, *Failure) {
	var d Domain
	var first Vertex
	var hint *hexdom.Pair
	var err error
	cur := start
	state := Start
	for {
		switch state {
		case Start:
			first = asm.pool[start]
			asm.closed[start] = true
			d.ID = first.ID
			d.Vertices = append(d.Vertices, first)
			state = Walking
		case Walking:
			v := asm.pool[cur]
			var path []hexdom.Pair
			var t Terminus
			if path, t, err = asm.walker.WalkToNext(v, hint); err != nil {
				state = Failed
				continue
			}
			d.Edges = append(d.Edges, path)
			if t.Coord.Near(first.Coord, asm.walker.tol) {
				// a region is walked counter-clockwise, a hole inside it clockwise
				if a := d.Area(); a <= 0 {
					err = fmt.Errorf("outline of %g has area %g: %w", d.ID, a, ErrHoleBoundary)
					state = Failed
					continue
				}
				state = Closed
				continue
			}
			next := asm.match(v, t)
			if next < 0 {
				err = fmt.Errorf("edge (%g,%g) ends at %v: %w", v.ID, v.Neighb.First, t.Coord, ErrUnmatchedVertex)
				state = Failed
				continue
			}
			asm.closed[next] = true
			cur, hint = next, t.Next
			d.Vertices = append(d.Vertices, asm.pool[next])
			if asm.pool[next].OnBoundary {
				err = fmt.Errorf("vertex %v: %w", t.Coord, ErrBoundaryTermination)
				state = Failed
			}
		case Closed:
			return d, nil
		case Failed:
			return d, asm.fail(first, d, err)
		}
	}
}

// match finds the unclosed candidate continuing the domain of v at the end
// of an edge: same domain, sitting at the terminus, having the domain
// walked along as its second neighbour and the terminating domain as its
// first one.
func (asm *assembler) match(v Vertex, t Terminus) int {
	for i, w := range asm.pool {
		if asm.closed[i] || w.ID != v.ID {
			continue
		}
		if w.Neighb.Second == v.Neighb.First && w.Neighb.First == t.Neighbour &&
			w.Coord.Near(t.Coord, asm.walker.tol) {
			return i
		}
	}
	return -1
}

func (asm *assembler) fail(first Vertex, d Domain, err error) *Failure {
	f := &Failure{Start: first, Visited: len(d.Vertices), Err: err}
	switch {
	case errors.Is(err, ErrStepBudget):
		f.Kind = StepBudgetExceeded
	case errors.Is(err, ErrUnmatchedVertex):
		f.Kind = UnmatchedVertex
	case errors.Is(err, ErrBoundaryTermination):
		f.Kind = BoundaryTermination
	case errors.Is(err, ErrHoleBoundary):
		f.Kind = HoleBoundary
	default:
		f.Kind = StructuralInconsistency
	}
	return f
}

func (asm *assembler) walkSpokes(d *Domain) {
	d.Spokes = make([][]hexdom.Pair, len(d.Vertices))
	for i, v := range d.Vertices {
		path, _, err := asm.walker.WalkToNeighbour(v, nil)
		if err != nil {
			tracer().Debugf("spoke from %v: %v", v.Coord, err)
			continue
		}
		d.Spokes[i] = path
	}
}
