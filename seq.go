// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

// Empty returns the empty sequence.
func Empty[A any]() Seq[A] {
	return &Halt[A]{}
}

// Raise returns a sequence that fails with err as soon as it is
// reached by a traversal.
func Raise[A any](err error) Seq[A] {
	return &Halt[A]{Err: err}
}

// One returns a sequence of exactly one element, with no extra
// suspended step to reach emptiness.
func One[A any](a A) Seq[A] {
	return &Last[A]{Item: a}
}

// Of returns a sequence over the given elements, backed by a single
// re-iterable batch.
func Of[A any](items ...A) Seq[A] {
	return FromSlice(items)
}

// FromSlice returns a sequence over items. The slice is not copied.
func FromSlice[A any](items []A) Seq[A] {
	if len(items) == 0 {
		return Empty[A]()
	}
	return &NextBatch[A]{Batch: NewSliceBatch(items), Rest: Pure(Empty[A]())}
}

// FromBatch returns a sequence over a batch.
func FromBatch[A any](b Batch[A]) Seq[A] {
	return &NextBatch[A]{Batch: b, Rest: Pure(Empty[A]())}
}

// FromCursor returns a sequence that drains a cursor. Single-pass,
// like the cursor itself.
func FromCursor[A any](c Cursor[A]) Seq[A] {
	return &NextCursor[A]{Cursor: c, Rest: Pure(Empty[A]())}
}

// Lazy defers computing a sequence until it is traversed.
func Lazy[A any](f func() Seq[A]) Seq[A] {
	return &Suspend[A]{Rest: Defer(func() Eff[Seq[A]] {
		return Pure(f())
	})}
}

// Append concatenates two sequences: every element of a precedes
// every element of b.
func Append[A any](a, b Seq[A]) Seq[A] {
	return &Concat[A]{Left: Pure(a), Right: Pure(b)}
}

// Unfold produces a sequence from successive applications of step to
// a threaded state. step returns the next element, the next state,
// and false to end the sequence. Each application is deferred behind
// a laziness boundary.
func Unfold[S, A any](seed S, step func(S) (A, S, bool)) Seq[A] {
	return Lazy(func() Seq[A] {
		a, next, ok := step(seed)
		if !ok {
			return Empty[A]()
		}
		return &Next[A]{Item: a, Rest: Defer(func() Eff[Seq[A]] {
			return Pure(Unfold(next, step))
		})}
	})
}

// ToSlice drives a sequence to completion, collecting every element.
func ToSlice[A any](s Seq[A]) ([]A, error) {
	return Run(FoldLeft(s,
		func() []A { return nil },
		func(acc []A, a A) []A { return append(acc, a) },
	))
}
