package flow

import (
	"fmt"

	"github.com/katalvlaran/flownet/residual"
)

// MaxFlow computes the maximum flow from source to sink in the directed
// network described by order (vertex count) and edges, using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - res: flow value, augmentation count, and the saturated residual
//     network, ready for MinCut or direct inspection
//   - err: non-nil on invalid input, an invalid Option, a done context,
//     or an exceeded augmentation bound; res is nil in every error case.
//
// Steps:
//  1. Apply options; an invalid Option surfaces as ErrOptionViolation.
//  2. Validate source and sink against [0, order), then source ≠ sink.
//  3. Build the residual network once via residual.Build (O(V + E)).
//  4. Repeat until the sink becomes unreachable:
//     a. Check for cancellation.
//     b. BFS for a fewest-hops augmenting path.
//     c. Walk the recorded parents for the bottleneck, then push it.
//  5. Package the result; the engine keeps no reference to the network.
//
// Complexity:
//
//	Time:   O(V · E²); at most O(V·E) augmentations of O(V + E) each.
//	Memory: O(V + E) for the network plus O(V) scratch shared by searches.
func MaxFlow(order int, edges []residual.Edge, source, sink int, opts ...Option) (*Result, error) {
	// 1) Apply options; surface an invalid one before any work.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Validate endpoints against [0, order).
	if source < 0 || source >= order {
		return nil, fmt.Errorf("%w: %d, want [0, %d)", ErrSourceOutOfRange, source, order)
	}
	if sink < 0 || sink >= order {
		return nil, fmt.Errorf("%w: %d, want [0, %d)", ErrSinkOutOfRange, sink, order)
	}
	if source == sink {
		return nil, fmt.Errorf("%w: vertex %d", ErrSourceIsSink, source)
	}

	// 3) Build the residual network; it carries all remaining flow state.
	net, err := residual.Build(order, edges)
	if err != nil {
		return nil, err
	}

	// 4) Run the augmentation loop.
	r := newRunner(net, source, sink, o)

	return r.run()
}

// runner carries the mutable state of one MaxFlow invocation: the residual
// network plus scratch buffers reused across augmenting-path searches.
type runner struct {
	net    *residual.Network
	opts   Options
	source int
	sink   int

	total  float64 // flow committed so far
	rounds int     // augmentations committed so far

	parent  []int  // parent[v] = predecessor of v on the current path
	via     []int  // via[v] = arc index at parent[v] that discovered v
	visited []bool // visited[v] = v discovered in the current search
	queue   []int  // FIFO frontier, reused across searches
}

func newRunner(net *residual.Network, source, sink int, o Options) *runner {
	n := net.VertexCount()

	return &runner{
		net:     net,
		opts:    o,
		source:  source,
		sink:    sink,
		parent:  make([]int, n),
		via:     make([]int, n),
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
	}
}

// run drives the augmentation loop until the sink becomes unreachable,
// the context is done, or the augmentation bound is exceeded. Each found
// path commits in full before the next search begins, so an abandoned
// computation never leaves a half-applied augmentation behind.
func (r *runner) run() (*Result, error) {
	var bottle float64
	for {
		// 4a) Cancellation gate between augmentations.
		if err := r.opts.Ctx.Err(); err != nil {
			return nil, err
		}

		// 4b) Shortest augmenting path; none means the flow is maximal.
		if !r.findPath() {
			break
		}

		// A further path past the allowed count means abandonment, not
		// completion: the partial flow value is withheld.
		if r.opts.MaxAugmentations > 0 && r.rounds >= r.opts.MaxAugmentations {
			return nil, fmt.Errorf("%w: %d", ErrAugmentationLimit, r.opts.MaxAugmentations)
		}

		// 4c) Commit the augmentation in full.
		bottle = r.augment()
		r.total += bottle
		r.rounds++
		if r.opts.OnAugment != nil {
			r.opts.OnAugment(r.path(), bottle)
		}
	}

	// 5) Hand the saturated network to the caller.
	return &Result{
		Value:         r.total,
		Augmentations: r.rounds,
		Residual:      r.net,
		source:        r.source,
		eps:           r.opts.Epsilon,
	}, nil
}
