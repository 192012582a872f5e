package residual

import "fmt"

// pairKey identifies an ordered vertex pair during construction. It never
// outlives Build.
type pairKey struct {
	from, to int
}

// Build constructs the residual network of a capacitated directed graph with
// `order` vertices and the given edge list. The input slice is read-only and
// may be reused by the caller afterwards.
//
// Construction rules:
//  1. Each ordered pair (u,v) present in the input owns exactly one forward
//     arc at u. Duplicate input edges over the same pair accumulate their
//     capacities into that arc rather than inserting a second, orphaned slot.
//  2. The paired reverse arc at v is created with capacity 0, unless an
//     antiparallel edge (v,u) appears in the input, in which case the pair
//     shares a single set of slots and the reverse arc simply carries that
//     edge's own capacity.
//  3. A self-loop (u,u) owns one arc that is its own reverse. It can never
//     lie on a source→sink path, so it stays inert under augmentation.
//
// Validation (fail-fast, nothing is clamped):
//   - order < 1                  → ErrBadOrder
//   - endpoint outside [0,order) → ErrVertexOutOfRange (wrapped with the edge)
//   - capacity < 0               → EdgeError
//
// Complexity:
//
//	Time:   O(order + E) expected (one map operation per input edge).
//	Memory: O(order + E); the pair→slot map is released before returning.
func Build(order int, edges []Edge) (*Network, error) {
	// 1) Validate the vertex count.
	if order < 1 {
		return nil, ErrBadOrder
	}

	// 2) Allocate adjacency lists and the construction-time slot index.
	n := &Network{arcs: make([][]Arc, order)}
	slot := make(map[pairKey]int, 2*len(edges))

	// 3) Insert every input edge, validating as we go.
	var e Edge
	for _, e = range edges {
		if e.From < 0 || e.From >= order {
			return nil, fmt.Errorf("%w: edge %d→%d references vertex %d, want [0, %d)",
				ErrVertexOutOfRange, e.From, e.To, e.From, order)
		}
		if e.To < 0 || e.To >= order {
			return nil, fmt.Errorf("%w: edge %d→%d references vertex %d, want [0, %d)",
				ErrVertexOutOfRange, e.From, e.To, e.To, order)
		}
		if e.Cap < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Cap}
		}

		// 3a) Locate (or create) the pair's forward slot, then accumulate.
		i := n.ensurePair(slot, e.From, e.To)
		n.arcs[e.From][i].Cap += e.Cap
	}

	return n, nil
}

// ensurePair returns the index of the arc u→v, creating the u→v / v→u pair
// with zero capacities and mutual Rev links if it does not exist yet.
func (n *Network) ensurePair(slot map[pairKey]int, u, v int) int {
	if i, ok := slot[pairKey{u, v}]; ok {
		return i
	}

	if u == v {
		// A loop pairs with itself: one arc, Rev pointing at its own slot.
		i := len(n.arcs[u])
		n.arcs[u] = append(n.arcs[u], Arc{To: u, Rev: i})
		slot[pairKey{u, u}] = i

		return i
	}

	fwd, rev := len(n.arcs[u]), len(n.arcs[v])
	n.arcs[u] = append(n.arcs[u], Arc{To: v, Rev: rev})
	n.arcs[v] = append(n.arcs[v], Arc{To: u, Rev: fwd})
	slot[pairKey{u, v}] = fwd
	slot[pairKey{v, u}] = rev

	return fwd
}
