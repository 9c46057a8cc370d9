// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Source bridges an external producer into a sequence over a bounded
// lock-free SPSC queue. Exactly one producer goroutine calls Emit,
// Fail, and Close; exactly one consumer drives the sequence returned
// by Sequence.
type Source[A any] struct {
	q      lfq.SPSC[A]
	closed atomix.Uint32
	err    error
	slot   A
}

// NewSource creates a source with the given bounded queue capacity.
func NewSource[A any](capacity int) *Source[A] {
	s := &Source[A]{}
	s.q.Init(capacity)
	return s
}

// Emit offers v to the consumer. Non-blocking: returns
// iox.ErrWouldBlock when the bounded queue is full and the producer
// should retry after the consumer makes progress.
func (s *Source[A]) Emit(v A) error {
	s.slot = v
	return s.q.Enqueue(&s.slot)
}

// Close marks the end of the stream. Elements already enqueued are
// still delivered before the consumer observes the end.
func (s *Source[A]) Close() {
	s.closed.Add(1)
}

// Fail closes the source with a failure: the consumer's sequence
// terminates with err after draining the already-enqueued elements.
func (s *Source[A]) Fail(err error) {
	s.err = err
	s.closed.Add(1)
}

// Sequence returns the consumer side: a lazy sequence that dequeues
// one element per pull, waiting past iox.ErrWouldBlock with adaptive
// backoff until the producer emits or closes.
func (s *Source[A]) Sequence() Seq[A] {
	return Lazy(s.pull)
}

func (s *Source[A]) pull() Seq[A] {
	var bo iox.Backoff
	for {
		if v, err := s.q.Dequeue(); err == nil {
			return s.next(v)
		}
		if s.closed.Load() != 0 {
			// Re-check the queue: elements may have been enqueued
			// between the failed dequeue and the close.
			if v, err := s.q.Dequeue(); err == nil {
				return s.next(v)
			}
			return &Halt[A]{Err: s.err}
		}
		bo.Wait()
	}
}

func (s *Source[A]) next(v A) Seq[A] {
	return &Next[A]{Item: v, Rest: Defer(func() Eff[Seq[A]] {
		return Pure(s.pull())
	})}
}
