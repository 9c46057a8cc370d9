// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull

// Cursor is a single-pass, stateful pull iterator over an
// already-materialized run of elements. Next without a preceding true
// HasNext is a protocol violation and panics.
type Cursor[A any] interface {
	HasNext() bool
	Next() A
}

// Batch is a re-iterable lazy chunk. Each Cursor call yields an
// independent traversal.
type Batch[A any] interface {
	Cursor() Cursor[A]
}

// SliceCursor is a Cursor over a slice.
type SliceCursor[A any] struct {
	items []A
	pos   int
}

// NewSliceCursor creates a cursor positioned at the first element.
func NewSliceCursor[A any](items []A) *SliceCursor[A] {
	return &SliceCursor[A]{items: items}
}

func (c *SliceCursor[A]) HasNext() bool {
	return c.pos < len(c.items)
}

func (c *SliceCursor[A]) Next() A {
	if c.pos >= len(c.items) {
		panic("pull: Next on exhausted cursor")
	}
	a := c.items[c.pos]
	c.pos++
	return a
}

// SliceBatch is a Batch over a slice. The slice is not copied; callers
// hand over ownership.
type SliceBatch[A any] struct {
	items []A
}

// NewSliceBatch creates a batch over items.
func NewSliceBatch[A any](items []A) *SliceBatch[A] {
	return &SliceBatch[A]{items: items}
}

// Cursor returns a fresh independent cursor over the batch.
func (b *SliceBatch[A]) Cursor() Cursor[A] {
	return &SliceCursor[A]{items: b.items}
}

// Len returns the number of elements in the batch.
func (b *SliceBatch[A]) Len() int {
	return len(b.items)
}
