// Package residual implements the residual-network representation behind the
// max-flow algorithms in flownet: a capacitated directed graph over dense
// integer vertices, stored as one flat slice of arcs per vertex, where every
// arc carries the index of its paired reverse arc.
//
// # Representation
//
// Vertices are the integers [0, VertexCount()). Build converts an input edge
// list into adjacency slices of Arc records:
//
//	type Arc struct {
//	    To  int     // neighbor vertex
//	    Cap float64 // remaining residual capacity
//	    Rev int     // index of the paired reverse arc inside the To list
//	}
//
// Every ordered pair (u,v) that appears in the input owns exactly one arc at
// u; its companion (v,u) arc is created with capacity 0 unless an antiparallel
// input edge already supplied it, in which case the two share their residual
// bookkeeping instead of spawning duplicate slots. Capacities of duplicate
// input edges over the same ordered pair accumulate into the single owning
// arc, so no adjacency slot is ever orphaned by a later insertion.
//
// The ordered-pair lookup needed to arrange this pairing exists only inside
// Build and is discarded before Build returns; afterwards the stored Rev
// index answers "where is the reverse arc?" in O(1) with no map or pointer
// chasing.
//
// # Invariants
//
//   - Pairing: for every arc u→v there is an arc v→u, and following Rev twice
//     leads back to the starting arc.
//   - Conservation: Push moves capacity between the two halves of a pair as
//     one indivisible step, so the pair's capacity sum never changes after
//     construction.
//   - Non-negativity: capacities start ≥ 0 and Push refuses (by panic) any
//     transfer that would drive one negative; such a request is a defect in
//     the calling algorithm, not a recoverable condition.
//
// # Ownership
//
// A Network is exclusively owned by whoever built it. Nothing in this package
// locks: the flow engine mutates the network single-threadedly and discards
// it when done, and readers of a finished network (cut extraction, tests)
// run strictly after the last Push.
//
// # Errors
//
//	ErrBadOrder         - requested vertex count below 1.
//	ErrVertexOutOfRange - an edge endpoint outside [0, order).
//	EdgeError           - an input edge with negative capacity.
//
// All are detected during Build; construction either fails completely or
// yields a fully consistent network.
package residual
