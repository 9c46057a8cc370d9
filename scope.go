// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

import (
	"errors"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/kont"
)

// NewScope builds a resource-scoped sub-sequence: acquire obtains the
// resource, use opens the sub-sequence, release runs on every exit
// path — normal completion, short-circuit stop, and failure. The
// error passed to release is the primary failure, or nil on the
// non-failure paths.
//
// Release runs at most once per scope value, guarded by an atomic
// counter; like cursors, scoped sequences are single-pass.
func NewScope[R, A any](
	acquire Eff[R],
	use func(R) Eff[Seq[A]],
	release func(R, error) Eff[struct{}],
) Seq[A] {
	var done atomix.Uint32
	return &Scoped[A]{
		Acquire: MapEff(acquire, func(r R) kont.Erased {
			return kont.Erased(r)
		}),
		Use: func(r kont.Erased) Eff[Seq[A]] {
			return use(r.(R))
		},
		Release: func(r kont.Erased, err error) Eff[struct{}] {
			return Defer(func() Eff[struct{}] {
				if done.Add(1) != 1 {
					return Pure(struct{}{})
				}
				return release(r.(R), err)
			})
		},
	}
}

// runScopeFold brackets the remainder of a fold: acquire, open the
// sub-sequence, run the continuation k (which carries the interpreter
// through the sub-sequence and whatever follows it), then release.
// A release failure joins a primary error rather than masking it.
func runScopeFold[A, R any](sc *Scoped[A], k func(Seq[A]) Eff[R]) Eff[R] {
	return Bind(sc.Acquire, func(res kont.Erased) Eff[R] {
		body := Bind(sc.Use(res), k)
		return Bind(Attempt(body), func(out kont.Either[error, R]) Eff[R] {
			primary, _ := out.GetLeft()
			return Bind(Attempt(sc.Release(res, primary)), func(rel kont.Either[error, struct{}]) Eff[R] {
				if relErr, failed := rel.GetLeft(); failed {
					if primary != nil {
						return Fault[R](errors.Join(primary, relErr))
					}
					return Fault[R](relErr)
				}
				return Eff[R]{Value: out, Frame: kont.ReturnFrame{}}
			})
		})
	})
}

// runScopeFlatMap re-scopes a transformed sub-sequence: the
// interpreter continues inside Use, and acquire/release still bracket
// the same section of the output sequence.
func runScopeFlatMap[A, B any](sc *Scoped[A], k func(Seq[A]) Eff[Seq[B]]) Eff[Seq[B]] {
	return Pure[Seq[B]](&Scoped[B]{
		Acquire: sc.Acquire,
		Use: func(r kont.Erased) Eff[Seq[B]] {
			return Bind(sc.Use(r), k)
		},
		Release: sc.Release,
	})
}
