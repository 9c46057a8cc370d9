// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull_test

import (
	"testing"

	"code.hybscloud.com/pull"
)

// collect drives a sequence to completion and fails the test on error.
func collect[A any](t *testing.T, s pull.Seq[A]) []A {
	t.Helper()
	items, err := pull.ToSlice[A](s)
	if err != nil {
		t.Fatalf("ToSlice error: %v", err)
	}
	return items
}

// nextChain builds a sequence of single Next nodes, one per element.
func nextChain(items []int) pull.Seq[int] {
	s := pull.Empty[int]()
	for i := len(items) - 1; i >= 0; i-- {
		rest := s
		s = &pull.Next[int]{Item: items[i], Rest: pull.Pure(rest)}
	}
	return s
}

// mixedSeq builds a sequence over items that exercises several node
// shapes: single Next nodes, batch chunks joined by Concat, and
// laziness boundaries.
func mixedSeq(items []int) pull.Seq[int] {
	s := pull.Empty[int]()
	i := len(items)
	for shape := 0; i > 0; shape++ {
		switch shape % 3 {
		case 0:
			i--
			rest := s
			s = &pull.Next[int]{Item: items[i], Rest: pull.Pure(rest)}
		case 1:
			lo := max(0, i-3)
			chunk := items[lo:i]
			i = lo
			s = pull.Append[int](pull.FromSlice(chunk), s)
		default:
			rest := s
			s = pull.Lazy(func() pull.Seq[int] { return rest })
		}
	}
	return s
}

// flatten concatenates windows back into a single element slice.
func flatten(windows [][]int) []int {
	var out []int
	for _, w := range windows {
		out = append(out, w...)
	}
	return out
}
