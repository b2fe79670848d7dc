/*
Package dirichlet discovers Dirichlet domains in an identity field over a
hexagonal grid and traces each one as a closed polygon.

An identity field labels every cell with the domain owning it (see
shape.DominantIdentity). Where three identities meet inside the grid, or
two meet at the grid's edge, the lattice point is a Dirichlet vertex. The
boundary between two domains is an edge; it runs from one vertex to the
next along hex sides.

Analysis runs in three steps:

  - every cell is tested for vertices it takes part in (DetectVertices,
    Candidates). The same lattice point is reported once per cell touching
    it, each time from that cell's point of view.
  - starting from an unclosed candidate, a Walker follows the edge between
    the candidate's own domain and its first neighbour domain up to the
    next vertex.
  - the assembler matches the vertex walked to against the candidate pool,
    continues from there, and accepts the domain when the walk arrives back
    at its first vertex.

Domains touching the grid boundary never close and are dropped. A domain
with a hole closes, but clockwise around the hole; it is dropped as well. Analyse
reports why each attempt failed; FindDomains returns the closed domains
only.

Tracing

The package traces to key 'hexdom.dirichlet'. Edge walking is traced at
debug level, domain outcomes at info level.
*/
package dirichlet

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'hexdom.dirichlet'
func tracer() tracing.Trace {
	return tracing.Select("hexdom.dirichlet")
}
