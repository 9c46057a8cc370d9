// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pull provides lazy, pull-based, effect-polymorphic sequences
// on [code.hybscloud.com/kont].
//
// A sequence is a recursive sum type whose recursive positions are
// suspended effects: producing the next element may first require
// performing a deferred computation. Traversal is trampolined through
// kont's iterative frame evaluator, so arbitrarily deep sequences and
// concatenation trees never grow the native call stack.
//
// # Architecture
//
//   - Effects: [Eff] is a generic alias over [code.hybscloud.com/kont.Expr]
//     carrying an error channel as [code.hybscloud.com/kont.Either].
//     Sequencing via [Bind] is stack-safe: evaluation bounces on kont's
//     defunctionalized frame loop, never on native recursion.
//   - Sequences: [Seq] is a closed sum of eight node shapes —
//     [Next], [NextCursor], [NextBatch], [Suspend], [Concat], [Scoped],
//     [Last], [Halt]. Recursive fields hold Eff[Seq].
//   - Interpreters: [Visitor] is the per-node dispatch contract shared
//     by every traversal algorithm. An interpreter instance owns its
//     accumulator and continuation stack and drives one traversal only.
//   - Transport: [Source] bridges an external single producer into a
//     sequence over a bounded lock-free SPSC queue
//     ([code.hybscloud.com/lfq]), waiting past
//     [code.hybscloud.com/iox.ErrWouldBlock] with adaptive backoff.
//
// # API Topologies
//
//   - Construction: [Empty], [One], [Raise], [Of], [FromSlice],
//     [FromBatch], [FromCursor], [Lazy], [Append], [Unfold], [NewScope].
//   - Folding: [FoldWhileLeft] (strict step), [FoldWhileLeftEval]
//     (effectful step), [FoldLeft], [ToSlice]. Step outcomes are
//     [Decision] values built with [More] and [Done]; a Done decision
//     short-circuits without evaluating the remaining sequence.
//   - Windowing: [BufferSliding] regroups single elements into
//     fixed-size, possibly overlapping windows; [Batched] is the
//     skip == count special case emitting pre-materialized batches.
//
// # Evaluation Model
//
// Execution is single-threaded and cooperative. Suspension means
// returning control to kont's frame loop between trampoline steps,
// not yielding to other goroutines. Traversal order is always
// left-to-right regardless of how many suspension boundaries are
// crossed. Folds and buffered sequences are single-use computations:
// they thread mutable cursor and interpreter state and must not be
// evaluated twice or shared across goroutines.
//
// # Error Handling
//
// Recoverable conditions are data: [Decision] values and [Halt] nodes.
// Failures travel the Eff error channel and short-circuit [Bind]
// chains. A Halt carrying an error aborts a whole fold regardless of
// pending concatenation continuations. Panics raised by user step
// functions inside synchronous drain loops are recovered at the drain
// boundary and converted into failures; cursor protocol violations and
// malformed window parameters panic.
//
// # Example
//
//	seq := pull.Of(1, 2, 3, 4, 5, 6, 7)
//	windows, err := pull.ToSlice(pull.BufferSliding(seq, 3, 3))
//	// windows == [][]int{{1, 2, 3}, {4, 5, 6}, {7}}, err == nil
//
//	sum, err := pull.Run(pull.FoldWhileLeft(seq,
//		func() int { return 0 },
//		func(acc, n int) pull.Decision[int] {
//			if acc >= 10 {
//				return pull.Done(acc)
//			}
//			return pull.More(acc + n)
//		},
//	))
package pull
