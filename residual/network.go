package residual

import "fmt"

// VertexCount reports the number of vertices in the network.
func (n *Network) VertexCount() int {
	return len(n.arcs)
}

// Degree reports the number of arcs stored at vertex u, reverse slots
// included. Panics if u is outside [0, VertexCount()).
func (n *Network) Degree(u int) int {
	return len(n.arcs[u])
}

// Arc returns a copy of arc i at vertex u. Stored order is insertion order
// and never changes after Build, so (u, i) is a stable handle for the whole
// life of the network. Panics if u or i are out of range.
func (n *Network) Arc(u, i int) Arc {
	return n.arcs[u][i]
}

// Capacity reports the residual capacity of the arc u→v and whether such an
// arc exists. O(Degree(u)); intended for inspection and tests, not for the
// augmentation hot path (which addresses arcs by index).
func (n *Network) Capacity(u, v int) (float64, bool) {
	for i := range n.arcs[u] {
		if n.arcs[u][i].To == v {
			return n.arcs[u][i].Cap, true
		}
	}

	return 0, false
}

// Push moves delta units of residual capacity from arc i at vertex u onto its
// paired reverse arc: the forward capacity decreases by delta and the reverse
// capacity increases by delta in one indivisible step, so the pair's sum is
// conserved exactly.
//
// delta must be strictly positive and must not exceed the arc's remaining
// capacity. Violating either bound means the calling algorithm chose an
// invalid augmentation; Push treats that as a fatal internal-consistency
// failure and panics rather than corrupting the network.
func (n *Network) Push(u, i int, delta float64) {
	a := &n.arcs[u][i]
	if delta <= 0 {
		panic(fmt.Sprintf("residual: non-positive push %g on arc %d→%d", delta, u, a.To))
	}
	if delta > a.Cap {
		panic(fmt.Sprintf("residual: push %g exceeds residual capacity %g on arc %d→%d", delta, a.Cap, u, a.To))
	}

	a.Cap -= delta
	n.arcs[a.To][a.Rev].Cap += delta
}

// Reachable reports, for every vertex, whether it can be reached from src
// through arcs of residual capacity strictly greater than eps. On a network
// the flow engine has finished with, the true entries form the source side
// of a minimum cut. Panics if src is out of range.
//
// Complexity: O(V + E) per call.
func (n *Network) Reachable(src int, eps float64) []bool {
	seen := make([]bool, len(n.arcs))
	seen[src] = true
	queue := make([]int, 0, len(n.arcs))
	queue = append(queue, src)

	var u int
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		for i := range n.arcs[u] {
			a := &n.arcs[u][i]
			if a.Cap > eps && !seen[a.To] {
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	return seen
}
