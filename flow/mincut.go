package flow

// MinCut returns the source side of a minimum s-t cut: every vertex still
// reachable from the source through arcs with residual capacity above the
// tolerance the computation ran with. By max-flow/min-cut duality the
// original capacities of the edges leaving this set sum to Value.
//
// Vertex ids come back in ascending order. The sink is never a member,
// since a reachable sink would mean another augmenting path existed.
//
// Complexity: O(V + E) per call.
func (r *Result) MinCut() []int {
	// 1) Reachability sweep over the saturated network.
	reach := r.Residual.Reachable(r.source, r.eps)

	// 2) Collect members in id order.
	cut := make([]int, 0, len(reach))
	for v, in := range reach {
		if in {
			cut = append(cut, v)
		}
	}

	return cut
}
