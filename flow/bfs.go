package flow

// findPath runs one breadth-first search from the source over arcs whose
// residual capacity exceeds Epsilon, recording for every discovered vertex
// its predecessor and the arc index used to reach it. It reports whether
// the sink was discovered.
//
// The search stops the moment the sink is found: BFS discovers vertices in
// nondecreasing hop distance, so the recorded path already has the fewest
// possible hops. Arcs are expanded in stored adjacency order, which makes
// the chosen path a pure function of the input edge list.
//
// parent and via are valid only for vertices discovered by the latest
// search; visited is the discovery record.
func (r *runner) findPath() bool {
	// 1) Reset per-search state; buffers are reused across searches.
	for i := range r.visited {
		r.visited[i] = false
	}
	r.queue = r.queue[:0]

	// 2) Seed the frontier; the source is its own parent.
	r.parent[r.source] = r.source
	r.visited[r.source] = true
	r.queue = append(r.queue, r.source)

	// 3) Expand in FIFO order until the sink turns up or the frontier dies.
	for head := 0; head < len(r.queue); head++ {
		u := r.queue[head]
		deg := r.net.Degree(u)
		for i := 0; i < deg; i++ {
			a := r.net.Arc(u, i)
			if r.visited[a.To] || a.Cap <= r.opts.Epsilon {
				continue
			}
			r.visited[a.To] = true
			r.parent[a.To] = u
			r.via[a.To] = i
			if a.To == r.sink {
				return true
			}
			r.queue = append(r.queue, a.To)
		}
	}

	return false
}
