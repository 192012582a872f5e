package residual

import (
	"errors"
	"fmt"
)

// Sentinel errors for residual-network construction.
var (
	// ErrBadOrder indicates the requested vertex count is below 1.
	ErrBadOrder = errors.New("residual: vertex count must be at least 1")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, order).
	ErrVertexOutOfRange = errors.New("residual: vertex id out of range")
)

// EdgeError reports an input edge carrying a negative capacity.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("residual: negative capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// Edge is one input triple of a capacitated directed graph: an edge from
// From to To able to carry up to Cap units of flow. Cap must be ≥ 0; a
// zero-capacity edge is legal and produces an arc that is never traversable.
type Edge struct {
	From int
	To   int
	Cap  float64
}

// Arc is a single residual entry: the remaining capacity toward To, plus the
// position Rev of the paired reverse arc inside the adjacency list of To.
// Rev is what lets an augmentation update both directions of a pair without
// any lookup structure surviving past Build.
type Arc struct {
	To  int
	Cap float64
	Rev int
}

// Network is a residual graph: one adjacency slice of Arcs per vertex.
// It is produced by Build, mutated only through Push, and holds the pairing,
// conservation, and non-negativity invariants described in the package
// documentation for its whole lifetime.
type Network struct {
	arcs [][]Arc
}
