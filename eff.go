// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Eff is a suspended computation that produces a value of type A or
// fails with an error. It is a defunctionalized kont expression whose
// value channel is an Either: Left carries the failure, Right the
// result. Evaluation happens on kont's iterative frame loop, so Bind
// chains of arbitrary depth are stack-safe.
type Eff[A any] = kont.Expr[kont.Either[error, A]]

// Pure lifts an already-known value into a completed effect.
func Pure[A any](a A) Eff[A] {
	return kont.ExprReturn(kont.Right[error](a))
}

// Fault creates a failed effect carrying err.
// Binding a failed effect short-circuits: continuation functions
// are never called.
func Fault[A any](err error) Eff[A] {
	return kont.ExprReturn(kont.Left[error, A](err))
}

// Defer creates an effect that computes f only when the frame loop
// reaches it. Unlike kont.ExprBind, construction never runs f, even
// transitively, so Defer is a true laziness boundary.
func Defer[A any](f func() Eff[A]) Eff[A] {
	bf := &kont.BindFrame[kont.Erased, kont.Erased]{
		F: func(kont.Erased) kont.Expr[kont.Erased] {
			m := f()
			return kont.Expr[kont.Erased]{Value: kont.Erased(m.Value), Frame: m.Frame}
		},
		Next: kont.ReturnFrame{},
	}
	var zero kont.Either[error, A]
	return Eff[A]{Value: zero, Frame: bf}
}

// Bind sequences two effects: it runs m, then passes the result to f.
// A Left result bypasses f and propagates the error.
//
// Bind always allocates a frame, even when m is already completed.
// The eager completed-input path of kont.ExprBind would re-enter f on
// the native call stack, which is exactly what interpreter recursion
// over Pure-rest sequences must avoid.
func Bind[A, B any](m Eff[A], f func(A) Eff[B]) Eff[B] {
	return bindFrame(m, f, &kont.BindFrame[kont.Erased, kont.Erased]{})
}

// bindOnce is Bind on a pooled single-use frame (kont.AcquireBindFrame).
// Interpreters use it for their internal recursion, where every effect
// is consumed exactly once per traversal.
func bindOnce[A, B any](m Eff[A], f func(A) Eff[B]) Eff[B] {
	return bindFrame(m, f, kont.AcquireBindFrame())
}

// bindFrame fills bf with the error-short-circuiting bind step and
// chains it after m's frames. A completed m is captured by value so the
// frame loop injects it when the frame is reached.
func bindFrame[A, B any](m Eff[A], f func(A) Eff[B], bf *kont.BindFrame[kont.Erased, kont.Erased]) Eff[B] {
	var zero kont.Either[error, B]
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		e := m.Value
		bf.F = func(kont.Erased) kont.Expr[kont.Erased] {
			return bindStep(e, f)
		}
		bf.Next = kont.ReturnFrame{}
		return Eff[B]{Value: zero, Frame: bf}
	}
	bf.F = func(v kont.Erased) kont.Expr[kont.Erased] {
		return bindStep(v.(kont.Either[error, A]), f)
	}
	bf.Next = kont.ReturnFrame{}
	return Eff[B]{Value: zero, Frame: kont.ChainFrames(m.Frame, bf)}
}

// bindStep applies f to a Right input, or propagates a Left unchanged.
func bindStep[A, B any](e kont.Either[error, A], f func(A) Eff[B]) kont.Expr[kont.Erased] {
	if err, ok := e.GetLeft(); ok {
		return kont.Expr[kont.Erased]{
			Value: kont.Erased(kont.Left[error, B](err)),
			Frame: kont.ReturnFrame{},
		}
	}
	a, _ := e.GetRight()
	n := f(a)
	return kont.Expr[kont.Erased]{Value: kont.Erased(n.Value), Frame: n.Frame}
}

// MapEff applies a pure function to the result of an effect.
// Errors pass through untouched.
func MapEff[A, B any](m Eff[A], f func(A) B) Eff[B] {
	return kont.ExprMap(m, func(e kont.Either[error, A]) kont.Either[error, B] {
		return kont.MapEither(e, f)
	})
}

// Attempt materializes the error channel: the returned effect never
// fails, producing the input's outcome as an Either instead.
func Attempt[A any](m Eff[A]) Eff[kont.Either[error, A]] {
	return kont.ExprMap(m, func(e kont.Either[error, A]) kont.Either[error, kont.Either[error, A]] {
		return kont.Right[error](e)
	})
}

// Run drives an effect to completion on the calling goroutine and
// returns its result or error.
func Run[A any](m Eff[A]) (A, error) {
	e := kont.RunPure(m)
	if err, ok := e.GetLeft(); ok {
		var zero A
		return zero, err
	}
	a, _ := e.GetRight()
	return a, nil
}

// recovered converts a recovered panic value into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("pull: panic in step function: %v", r)
}
