// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

// BufferSliding re-chunks a sequence of single elements into ordered
// windows of length count, advancing the window start by skip each
// time. skip == count yields disjoint chunks, skip < count yields
// overlapping windows (each window repeats the previous window's
// count-skip trailing elements), skip > count drops the elements
// between windows.
//
// The result is lazily suspended: nothing is traversed until the
// returned sequence is driven, and a failure deep in the input
// surfaces exactly at the point it is reached. Panics count < 1 or
// skip < 1. The result is single-use.
func BufferSliding[A any](s Seq[A], count, skip int) Seq[[]A] {
	checkWindow(count, skip)
	return &Suspend[[]A]{Rest: Defer(func() Eff[Seq[[]A]] {
		v := &bufferVisitor[A, []A]{
			win: newWindow[A](count, skip),
			emit: func(w []A, rest Eff[Seq[[]A]]) Seq[[]A] {
				return &Next[[]A]{Item: w, Rest: rest}
			},
			last: func(w []A) Seq[[]A] {
				return &Last[[]A]{Item: w}
			},
		}
		return Visit[A, Seq[[]A]](s, v)
	})}
}

// Batched is the skip == count special case of BufferSliding that
// keeps the element type, emitting each full group as a
// pre-materialized NextBatch node for consumers that traverse batches
// directly. Windowing arithmetic is identical to BufferSliding.
// Panics if count < 1. The result is single-use.
func Batched[A any](s Seq[A], count int) Seq[A] {
	checkWindow(count, count)
	return &Suspend[A]{Rest: Defer(func() Eff[Seq[A]] {
		v := &bufferVisitor[A, A]{
			win: newWindow[A](count, count),
			emit: func(w []A, rest Eff[Seq[A]]) Seq[A] {
				return &NextBatch[A]{Batch: NewSliceBatch(w), Rest: rest}
			},
			last: func(w []A) Seq[A] {
				return &NextBatch[A]{Batch: NewSliceBatch(w), Rest: Pure(Empty[A]())}
			},
		}
		return Visit[A, Seq[A]](s, v)
	})}
}

func checkWindow(count, skip int) {
	if count < 1 || skip < 1 {
		panic("pull: window count and skip must be >= 1")
	}
}

// window holds the in-progress group for one buffering run. storage is
// reused in place on the common not-yet-full path; a completed group
// is copied out to an independent snapshot, so the live array is never
// aliased by an emitted window.
type window[A any] struct {
	storage   []A
	length    int
	dropped   int
	toDrop    int // elements to discard between windows (skip > count)
	toRepeat  int // trailing elements carried into the next window (skip < count)
	completed bool
}

func newWindow[A any](count, skip int) *window[A] {
	return &window[A]{
		storage:  make([]A, count),
		toDrop:   max(0, skip-count),
		toRepeat: max(0, count-skip),
	}
}

// push feeds one element into the buffer. Returns the completed
// window snapshot and true when the fill length reaches count.
func (w *window[A]) push(a A) ([]A, bool) {
	if w.dropped > 0 {
		w.dropped--
		return nil, false
	}
	w.storage[w.length] = a
	w.length++
	if w.length < len(w.storage) {
		return nil, false
	}
	snap := make([]A, len(w.storage))
	copy(snap, w.storage)
	if w.toRepeat > 0 {
		copy(w.storage, w.storage[len(w.storage)-w.toRepeat:])
		w.length = w.toRepeat
	} else {
		w.dropped = w.toDrop
		w.length = 0
	}
	w.completed = true
	return snap, true
}

// rest flushes the partial remainder at end of input. Before any
// window has completed, a non-empty buffer flushes whole. Afterwards
// the remainder flushes only if it holds more than the toRepeat
// elements already emitted as overlap. nil means nothing to flush.
func (w *window[A]) rest() []A {
	if w.length == 0 {
		return nil
	}
	if w.completed && w.length <= w.toRepeat {
		return nil
	}
	snap := make([]A, w.length)
	copy(snap, w.storage[:w.length])
	return snap
}

// bufferVisitor drives the windowing walk. The output node shape is
// abstracted behind emit/last so BufferSliding and Batched share one
// interpreter.
type bufferVisitor[A, B any] struct {
	win   *window[A]
	stack contStack[A]
	emit  func(w []A, rest Eff[Seq[B]]) Seq[B]
	last  func(w []A) Seq[B]
}

func (v *bufferVisitor[A, B]) resume(m Eff[Seq[A]]) Eff[Seq[B]] {
	return bindOnce(m, func(s Seq[A]) Eff[Seq[B]] {
		return Visit[A, Seq[B]](s, v)
	})
}

// again re-enters a node whose cursor was left mid-run when a window
// completed.
func (v *bufferVisitor[A, B]) again(s Seq[A]) Eff[Seq[B]] {
	return Defer(func() Eff[Seq[B]] {
		return Visit[A, Seq[B]](s, v)
	})
}

// drain feeds cursor elements into the window until one completes or
// the cursor is exhausted. Cursor faults are converted to errors here
// so a single offending element cannot corrupt the rest of the
// pipeline.
func (v *bufferVisitor[A, B]) drain(cur Cursor[A]) (snap []A, ready bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	for cur.HasNext() {
		if s, ok := v.win.push(cur.Next()); ok {
			return s, true, nil
		}
	}
	return nil, false, nil
}

// finish runs the end-of-stream flush.
func (v *bufferVisitor[A, B]) finish() Eff[Seq[B]] {
	if tail := v.win.rest(); tail != nil {
		return Pure(v.last(tail))
	}
	return Pure[Seq[B]](&Halt[B]{})
}

// ended handles a consumed terminal: pop a pending continuation or
// flush and finish.
func (v *bufferVisitor[A, B]) ended() Eff[Seq[B]] {
	if m, ok := v.stack.pop(); ok {
		return v.resume(m)
	}
	return v.finish()
}

func (v *bufferVisitor[A, B]) VisitNext(n *Next[A]) Eff[Seq[B]] {
	if snap, ok := v.win.push(n.Item); ok {
		return Pure(v.emit(snap, v.resume(n.Rest)))
	}
	return v.resume(n.Rest)
}

func (v *bufferVisitor[A, B]) VisitNextCursor(n *NextCursor[A]) Eff[Seq[B]] {
	snap, ready, err := v.drain(n.Cursor)
	if err != nil {
		return v.Fail(err)
	}
	if ready {
		return Pure(v.emit(snap, v.again(n)))
	}
	return v.resume(n.Rest)
}

func (v *bufferVisitor[A, B]) VisitNextBatch(n *NextBatch[A]) Eff[Seq[B]] {
	cur, err := openBatch(n.Batch)
	if err != nil {
		return v.Fail(err)
	}
	return Visit[A, Seq[B]](&NextCursor[A]{Cursor: cur, Rest: n.Rest}, v)
}

func (v *bufferVisitor[A, B]) VisitSuspend(n *Suspend[A]) Eff[Seq[B]] {
	return v.resume(n.Rest)
}

func (v *bufferVisitor[A, B]) VisitConcat(n *Concat[A]) Eff[Seq[B]] {
	v.stack.push(n.Right)
	return v.resume(n.Left)
}

func (v *bufferVisitor[A, B]) VisitScoped(n *Scoped[A]) Eff[Seq[B]] {
	return runScopeFlatMap(n, func(s Seq[A]) Eff[Seq[B]] {
		return Visit[A, Seq[B]](s, v)
	})
}

func (v *bufferVisitor[A, B]) VisitLast(n *Last[A]) Eff[Seq[B]] {
	if snap, ok := v.win.push(n.Item); ok {
		if m, popped := v.stack.pop(); popped {
			return Pure(v.emit(snap, v.resume(m)))
		}
		return Pure(v.emit(snap, v.finish()))
	}
	return v.ended()
}

func (v *bufferVisitor[A, B]) VisitHalt(n *Halt[A]) Eff[Seq[B]] {
	if n.Err != nil {
		// Pending continuations are dropped; the failure surfaces
		// exactly here in the output.
		return Pure[Seq[B]](&Halt[B]{Err: n.Err})
	}
	return v.ended()
}

// Fail converts a boundary fault into a failing terminal node rather
// than an uncontrolled fault: the output stays a lawful sequence.
func (v *bufferVisitor[A, B]) Fail(err error) Eff[Seq[B]] {
	return Pure[Seq[B]](&Halt[B]{Err: err})
}

// openBatch guards the batch's cursor construction.
func openBatch[A any](b Batch[A]) (cur Cursor[A], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return b.Cursor(), nil
}
