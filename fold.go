// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

import "code.hybscloud.com/kont"

// Decision is the per-element fold outcome: Left keeps accumulating
// with the new state, Right stops with the final state.
type Decision[S any] = kont.Either[S, S]

// More continues the fold with state s.
func More[S any](s S) Decision[S] {
	return kont.Left[S, S](s)
}

// Done stops the fold with final state s. No further elements are
// visited and the remaining sequence is never evaluated.
func Done[S any](s S) Decision[S] {
	return kont.Right[S, S](s)
}

// FoldWhileLeft folds a sequence with a strict step function until it
// returns Done or the sequence ends. The seed is computed when the
// returned effect runs, not at call time. Cursors are drained in one
// synchronous loop per node; a panic in step is recovered at the drain
// boundary and converted into a failed effect.
//
// The returned effect is single-use.
func FoldWhileLeft[A, S any](s Seq[A], seed func() S, step func(S, A) Decision[S]) Eff[S] {
	return Defer(func() Eff[S] {
		v := &foldVisitor[A, S]{step: step}
		v.state = seed()
		return Visit[A, S](s, v)
	})
}

// FoldWhileLeftEval is FoldWhileLeft with an effectful seed and step.
// Every element application may itself suspend, so cursor runs are
// re-suspended after each element instead of drained in one loop.
//
// The returned effect is single-use.
func FoldWhileLeftEval[A, S any](s Seq[A], seed Eff[S], step func(S, A) Eff[Decision[S]]) Eff[S] {
	v := &foldEvalVisitor[A, S]{step: step}
	return Bind(seed, func(s0 S) Eff[S] {
		v.state = s0
		return Visit[A, S](s, v)
	})
}

// FoldLeft is the unconditional left fold, derived from FoldWhileLeft
// with a step that always continues.
func FoldLeft[A, S any](s Seq[A], seed func() S, step func(S, A) S) Eff[S] {
	return FoldWhileLeft(s, seed, func(acc S, a A) Decision[S] {
		return More(step(acc, a))
	})
}

// foldVisitor is the strict fold interpreter. state and stack are
// owned by one traversal.
type foldVisitor[A, S any] struct {
	state S
	stack contStack[A]
	step  func(S, A) Decision[S]
}

// resume continues the traversal into the next sequence state.
// Recursion passes back through the effect's bind, so depth is bounded
// by the frame loop, not the call stack.
func (v *foldVisitor[A, S]) resume(m Eff[Seq[A]]) Eff[S] {
	return bindOnce(m, func(s Seq[A]) Eff[S] {
		return Visit[A, S](s, v)
	})
}

// apply runs the step function on one element, converting a panic
// into an error.
func (v *foldVisitor[A, S]) apply(a A) (d Decision[S], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return v.step(v.state, a), nil
}

// drain consumes the cursor in a tight synchronous loop, threading the
// accumulator through step until the cursor is exhausted or step stops.
func (v *foldVisitor[A, S]) drain(cur Cursor[A]) (st S, stopped bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	st = v.state
	for cur.HasNext() {
		d := v.step(st, cur.Next())
		if s, ok := d.GetRight(); ok {
			return s, true, nil
		}
		s, _ := d.GetLeft()
		st = s
	}
	return st, false, nil
}

func (v *foldVisitor[A, S]) VisitNext(n *Next[A]) Eff[S] {
	d, err := v.apply(n.Item)
	if err != nil {
		return v.Fail(err)
	}
	if s, ok := d.GetRight(); ok {
		return Pure(s)
	}
	s, _ := d.GetLeft()
	v.state = s
	return v.resume(n.Rest)
}

func (v *foldVisitor[A, S]) VisitNextCursor(n *NextCursor[A]) Eff[S] {
	st, stopped, err := v.drain(n.Cursor)
	if err != nil {
		return v.Fail(err)
	}
	v.state = st
	if stopped {
		return Pure(st)
	}
	return v.resume(n.Rest)
}

func (v *foldVisitor[A, S]) VisitNextBatch(n *NextBatch[A]) Eff[S] {
	cur, err := openBatch(n.Batch)
	if err != nil {
		return v.Fail(err)
	}
	return v.VisitNextCursor(&NextCursor[A]{Cursor: cur, Rest: n.Rest})
}

func (v *foldVisitor[A, S]) VisitSuspend(n *Suspend[A]) Eff[S] {
	return v.resume(n.Rest)
}

func (v *foldVisitor[A, S]) VisitConcat(n *Concat[A]) Eff[S] {
	v.stack.push(n.Right)
	return v.resume(n.Left)
}

func (v *foldVisitor[A, S]) VisitScoped(n *Scoped[A]) Eff[S] {
	return runScopeFold(n, func(s Seq[A]) Eff[S] {
		return Visit[A, S](s, v)
	})
}

func (v *foldVisitor[A, S]) VisitLast(n *Last[A]) Eff[S] {
	d, err := v.apply(n.Item)
	if err != nil {
		return v.Fail(err)
	}
	if s, ok := d.GetRight(); ok {
		return Pure(s)
	}
	s, _ := d.GetLeft()
	v.state = s
	if m, ok := v.stack.pop(); ok {
		return v.resume(m)
	}
	return Pure(s)
}

func (v *foldVisitor[A, S]) VisitHalt(n *Halt[A]) Eff[S] {
	if n.Err != nil {
		// An error anywhere aborts the whole fold; pending
		// continuations are dropped unevaluated.
		return Fault[S](n.Err)
	}
	if m, ok := v.stack.pop(); ok {
		return v.resume(m)
	}
	return Pure(v.state)
}

func (v *foldVisitor[A, S]) Fail(err error) Eff[S] {
	return Fault[S](err)
}

// foldEvalVisitor is the effectful fold interpreter. It re-suspends
// after every element because each step may itself perform an effect.
type foldEvalVisitor[A, S any] struct {
	state S
	stack contStack[A]
	step  func(S, A) Eff[Decision[S]]
}

func (v *foldEvalVisitor[A, S]) resume(m Eff[Seq[A]]) Eff[S] {
	return bindOnce(m, func(s Seq[A]) Eff[S] {
		return Visit[A, S](s, v)
	})
}

// apply guards the synchronous construction of the step effect.
// Failures inside the effect itself propagate through bind.
func (v *foldEvalVisitor[A, S]) apply(a A) (m Eff[Decision[S]], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return v.step(v.state, a), nil
}

// stepInto binds one step effect and continues with rest on More.
func (v *foldEvalVisitor[A, S]) stepInto(a A, rest func() Eff[S]) Eff[S] {
	m, err := v.apply(a)
	if err != nil {
		return v.Fail(err)
	}
	return bindOnce(m, func(d Decision[S]) Eff[S] {
		if s, ok := d.GetRight(); ok {
			return Pure(s)
		}
		s, _ := d.GetLeft()
		v.state = s
		return rest()
	})
}

func (v *foldEvalVisitor[A, S]) VisitNext(n *Next[A]) Eff[S] {
	return v.stepInto(n.Item, func() Eff[S] {
		return v.resume(n.Rest)
	})
}

func (v *foldEvalVisitor[A, S]) VisitNextCursor(n *NextCursor[A]) Eff[S] {
	if !n.Cursor.HasNext() {
		return v.resume(n.Rest)
	}
	item := n.Cursor.Next()
	// Resuming re-enters the same node: the cursor has already
	// advanced past item.
	return v.stepInto(item, func() Eff[S] {
		return Visit[A, S](n, v)
	})
}

func (v *foldEvalVisitor[A, S]) VisitNextBatch(n *NextBatch[A]) Eff[S] {
	// Materialize the cursor once so partial progress survives the
	// per-element suspensions.
	cur, err := openBatch(n.Batch)
	if err != nil {
		return v.Fail(err)
	}
	return Visit[A, S](&NextCursor[A]{Cursor: cur, Rest: n.Rest}, v)
}

func (v *foldEvalVisitor[A, S]) VisitSuspend(n *Suspend[A]) Eff[S] {
	return v.resume(n.Rest)
}

func (v *foldEvalVisitor[A, S]) VisitConcat(n *Concat[A]) Eff[S] {
	v.stack.push(n.Right)
	return v.resume(n.Left)
}

func (v *foldEvalVisitor[A, S]) VisitScoped(n *Scoped[A]) Eff[S] {
	return runScopeFold(n, func(s Seq[A]) Eff[S] {
		return Visit[A, S](s, v)
	})
}

func (v *foldEvalVisitor[A, S]) VisitLast(n *Last[A]) Eff[S] {
	return v.stepInto(n.Item, func() Eff[S] {
		if m, ok := v.stack.pop(); ok {
			return v.resume(m)
		}
		return Pure(v.state)
	})
}

func (v *foldEvalVisitor[A, S]) VisitHalt(n *Halt[A]) Eff[S] {
	if n.Err != nil {
		return Fault[S](n.Err)
	}
	if m, ok := v.stack.pop(); ok {
		return v.resume(m)
	}
	return Pure(v.state)
}

func (v *foldEvalVisitor[A, S]) Fail(err error) Eff[S] {
	return Fault[S](err)
}
