// Package flow computes maximum s-t flow over networks held in the
// arena-backed residual.Network representation. It implements the
// Edmonds–Karp algorithm: Ford–Fulkerson augmentation driven by
// breadth-first search, so every augmenting path has the fewest possible
// hops and the worst-case running time stays polynomial.
//
//   - Method: BFS for shortest augmenting paths, committed one at a time.
//   - Time:   O(V · E²) worst case; each of the ≤ O(V·E) augmentations
//     costs one O(V + E) search plus an O(V) path walk.
//   - Memory: O(V + E) for the network, O(V) scratch reused by searches.
//
// # Determinism
//
// A run is a pure function of its inputs. BFS expands arcs in stored
// adjacency order, which follows first appearance in the caller's edge
// list, and stops the moment the sink is discovered. Two invocations with
// the same vertex count, edge list, endpoints, and options therefore pick
// identical paths in identical order and produce identical results, down
// to the augmentation sequence observed by OnAugment.
//
// # API
//
// One entry point:
//
//	func MaxFlow(
//	    order int,
//	    edges []residual.Edge,
//	    source, sink int,
//	    opts ...Option,
//	) (*Result, error)
//
// Functional options tune a single invocation:
//
//	flow.WithContext(ctx)          // cancellation between augmentations
//	flow.WithEpsilon(1e-6)         // residual-capacity tolerance
//	flow.WithMaxAugmentations(500) // abandon past this many commits
//	flow.WithOnAugment(hook)       // observe each committed path
//
// Result exposes the flow value, the augmentation count, and the final
// residual network; Result.MinCut derives the source side of a minimum
// cut from residual reachability.
//
// # Errors
//
//	ErrSourceOutOfRange  - source id outside [0, order).
//	ErrSinkOutOfRange    - sink id outside [0, order).
//	ErrSourceIsSink      - source == sink; the flow value is undefined.
//	ErrOptionViolation   - an Option carried an invalid value.
//	ErrAugmentationLimit - the WithMaxAugmentations bound was exceeded.
//	residual.ErrBadOrder / residual.ErrVertexOutOfRange / residual.EdgeError
//	                     - invalid network description, surfaced from Build.
//	context.Canceled / context.DeadlineExceeded - the context ended first.
//
// Every error path returns a nil *Result: an abandoned computation never
// reports a partial flow value.
//
// # Integration
//
//   - Relies on github.com/katalvlaran/flownet/residual for network
//     construction, paired-arc bookkeeping, and reachability.
//
// See the package example for the classic two-path diamond worked end to
// end.
package flow
