package flow

import (
	"fmt"
	"math"
)

// augment walks the recorded parents twice: first from sink to source to
// take the minimum residual capacity along the path, then again to push
// that bottleneck through every arc. Push maintains the paired reverse
// arcs, so the undo capacity for later searches appears in the same pass.
//
// Each step is addressed by its (parent[v], via[v]) pair, giving O(1)
// access to the arc and its reverse; total cost is O(len(path)).
func (r *runner) augment() float64 {
	// 1) Bottleneck pass.
	bottle := math.Inf(1)
	for v := r.sink; v != r.source; v = r.parent[v] {
		if c := r.net.Arc(r.parent[v], r.via[v]).Cap; c < bottle {
			bottle = c
		}
	}
	// The search only crossed arcs above Epsilon, so a bottleneck at or
	// below it means the parent records are corrupt.
	if bottle <= r.opts.Epsilon {
		panic(fmt.Sprintf("flow: augmenting-path bottleneck %g not above epsilon %g", bottle, r.opts.Epsilon))
	}

	// 2) Update pass: forward capacities shrink, paired reverses grow.
	for v := r.sink; v != r.source; v = r.parent[v] {
		r.net.Push(r.parent[v], r.via[v], bottle)
	}

	return bottle
}

// path reconstructs the current augmenting path, source first. It is
// materialized only when an OnAugment hook asks for it; the hook may
// retain the returned slice.
func (r *runner) path() []int {
	// build reversed path
	p := []int{r.sink}
	for v := r.sink; v != r.source; {
		v = r.parent[v]
		p = append(p, v)
	}
	// reverse to get source → sink
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}

	return p
}
