package dirichlet

import "errors"

var (
	// ErrFieldLength indicates an identity field not matching the grid.
	ErrFieldLength = errors.New("dirichlet: identity field length does not match grid")
	// ErrStructural indicates an identity field or grid contradicting the
	// adjacency the edge walker relies on. It is not retriable.
	ErrStructural = errors.New("dirichlet: structural inconsistency")
	// ErrStepBudget indicates an edge walk exceeding its step budget.
	ErrStepBudget = errors.New("dirichlet: edge walk exceeded step budget")
	// ErrBoundaryVertex indicates a walk along an edge bordering the outside
	// of the grid.
	ErrBoundaryVertex = errors.New("dirichlet: edge borders the outside of the grid")
	// ErrUnmatchedVertex indicates an edge end without an unclosed candidate
	// vertex to continue from.
	ErrUnmatchedVertex = errors.New("dirichlet: no candidate vertex at edge end")
	// ErrBoundaryTermination indicates a domain walk arriving at a vertex on
	// the grid boundary.
	ErrBoundaryTermination = errors.New("dirichlet: domain reaches grid boundary")
	// ErrHoleBoundary indicates a walk closing clockwise. It went around a
	// hole in a region, not around the region itself.
	ErrHoleBoundary = errors.New("dirichlet: walk closed around a hole")
	// ErrIdentity indicates an identity which is NaN or infinite.
	ErrIdentity = errors.New("dirichlet: identity is not a finite number")
)
