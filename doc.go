// Package flownet computes maximum flow on capacitated directed networks:
// a small, deterministic Edmonds–Karp engine over an arena-backed residual
// graph.
//
// 🚀 What is flownet?
//
//	A focused max-flow library built from two cooperating packages:
//		• residual/ — edge-list → residual network construction with paired
//		  reverse arcs, stored reverse indices, and conserving capacity moves
//		• flow/     — the Edmonds–Karp loop: BFS shortest augmenting paths,
//		  bottleneck commits, min-cut extraction from the saturated network
//
// ✨ Why choose flownet?
//
//   - Deterministic – fixed BFS tie-break, identical runs down to the
//     augmentation sequence
//   - Rock-solid bookkeeping – paired forward/reverse arcs conserve
//     capacity exactly, checked invariants panic on defects
//   - Minimal API – one entry point, functional options, explicit errors
//   - Inspectable – the final residual network comes back to the caller,
//     min cuts fall out of reachability
//
// Quick ASCII example, the two-path diamond:
//
//	      ┌──10──▶ 1 ──10──┐
//	    0─┤                ├──▶ 3      max flow 0→3 = 15
//	      └───5──▶ 2 ──10──┘
//
//	res, err := flow.MaxFlow(4, edges, 0, 3)
//
// cmd/flownet-demo runs the bundled 8-vertex transportation network and the
// diamond end to end with structured logging of every augmentation.
//
//	go get github.com/katalvlaran/flownet
package flownet
