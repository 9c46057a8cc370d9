// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

// contStack is the continuation stack: a growable LIFO of pending
// right-hand continuations. Entering a Concat pushes the right side;
// reaching a non-erroneous terminal pops and resumes. Owned by a
// single traversal; the backing array is reused across steps.
type contStack[A any] struct {
	items []Eff[Seq[A]]
}

func (s *contStack[A]) push(m Eff[Seq[A]]) {
	s.items = append(s.items, m)
}

// pop removes and returns the most recent continuation.
// The false return is the empty-stack sentinel, not an error.
func (s *contStack[A]) pop() (Eff[Seq[A]], bool) {
	n := len(s.items)
	if n == 0 {
		var zero Eff[Seq[A]]
		return zero, false
	}
	m := s.items[n-1]
	s.items[n-1] = Eff[Seq[A]]{}
	s.items = s.items[:n-1]
	return m, true
}
