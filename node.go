// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

import "code.hybscloud.com/kont"

// Seq is one node of a lazy pull sequence: the current state of a
// stream in progress. The sum is closed — the unexported marker method
// keeps the eight node shapes exhaustive, so interpreters dispatch
// with a type switch and treat anything else as a programming error.
type Seq[A any] interface {
	seq()
}

// Next is one element plus a suspended continuation producing the
// next state.
type Next[A any] struct {
	Item A
	Rest Eff[Seq[A]]
}

func (*Next[A]) seq() {}

// NextCursor is an already-materialized run of elements exposed as a
// single-pass pull cursor, plus the continuation for after the cursor
// is exhausted. The cursor is mutable: interpreters that suspend
// mid-run resume by re-entering the same node, not by rebuilding it.
type NextCursor[A any] struct {
	Cursor Cursor[A]
	Rest   Eff[Seq[A]]
}

func (*NextCursor[A]) seq() {}

// NextBatch is a lazy chunk that mints a fresh cursor on demand,
// plus the continuation for after the chunk. Convertible to a
// NextCursor by requesting Batch.Cursor.
type NextBatch[A any] struct {
	Batch Batch[A]
	Rest  Eff[Seq[A]]
}

func (*NextBatch[A]) seq() {}

// Suspend is a pure laziness boundary: computing the next state is
// deferred behind Rest.
type Suspend[A any] struct {
	Rest Eff[Seq[A]]
}

func (*Suspend[A]) seq() {}

// Concat is logical concatenation. Every element produced while
// interpreting Left precedes every element of Right.
type Concat[A any] struct {
	Left  Eff[Seq[A]]
	Right Eff[Seq[A]]
}

func (*Concat[A]) seq() {}

// Scoped is a resource-scoped sub-sequence: Acquire obtains a
// resource, Use opens the sub-sequence, Release runs on every exit
// path. Interpreters delegate to runScopeFold or runScopeFlatMap
// rather than inspecting the fields. The resource type is erased;
// build Scoped nodes with [NewScope] to keep the assertions paired.
type Scoped[A any] struct {
	Acquire Eff[kont.Erased]
	Use     func(kont.Erased) Eff[Seq[A]]
	Release func(kont.Erased, error) Eff[struct{}]
}

func (*Scoped[A]) seq() {}

// Last is exactly one final element. Terminal after the element,
// except via a continuation stack pop.
type Last[A any] struct {
	Item A
}

func (*Last[A]) seq() {}

// Halt is terminal: a nil Err is normal end-of-stream, a non-nil Err
// is a failure.
type Halt[A any] struct {
	Err error
}

func (*Halt[A]) seq() {}

// Visitor is the trampolined interpreter protocol: one handler per
// node shape, each returning an effect rather than recursing natively,
// plus Fail for converting boundary faults into the result type.
//
// An implementation holds private mutable state (accumulator,
// continuation stack) and is reused across the whole traversal of one
// logical sequence. It is not reentrant and must not be shared across
// concurrent traversals.
type Visitor[A, R any] interface {
	VisitNext(n *Next[A]) Eff[R]
	VisitNextCursor(n *NextCursor[A]) Eff[R]
	VisitNextBatch(n *NextBatch[A]) Eff[R]
	VisitSuspend(n *Suspend[A]) Eff[R]
	VisitConcat(n *Concat[A]) Eff[R]
	VisitScoped(n *Scoped[A]) Eff[R]
	VisitLast(n *Last[A]) Eff[R]
	VisitHalt(n *Halt[A]) Eff[R]
	Fail(err error) Eff[R]
}

// Visit dispatches a node to the matching Visitor handler.
func Visit[A, R any](s Seq[A], v Visitor[A, R]) Eff[R] {
	switch n := s.(type) {
	case *Next[A]:
		return v.VisitNext(n)
	case *NextCursor[A]:
		return v.VisitNextCursor(n)
	case *NextBatch[A]:
		return v.VisitNextBatch(n)
	case *Suspend[A]:
		return v.VisitSuspend(n)
	case *Concat[A]:
		return v.VisitConcat(n)
	case *Scoped[A]:
		return v.VisitScoped(n)
	case *Last[A]:
		return v.VisitLast(n)
	case *Halt[A]:
		return v.VisitHalt(n)
	default:
		panic("pull: unknown sequence node")
	}
}
