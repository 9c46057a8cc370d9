// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull_test

import (
	"testing"

	"code.hybscloud.com/pull"
)

func TestSliceCursorDrains(t *testing.T) {
	c := pull.NewSliceCursor([]int{1, 2, 3})
	var got []int
	for c.HasNext() {
		got = append(got, c.Next())
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
	if c.HasNext() {
		t.Fatal("HasNext true after drain")
	}
}

func TestSliceCursorNextPanicsWhenExhausted(t *testing.T) {
	c := pull.NewSliceCursor([]int{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Next without HasNext")
		}
	}()
	c.Next()
}

func TestSliceBatchIndependentCursors(t *testing.T) {
	b := pull.NewSliceBatch([]int{1, 2, 3})
	c1 := b.Cursor()
	c2 := b.Cursor()
	if c1.Next() != 1 || c1.Next() != 2 {
		t.Fatal("first cursor out of order")
	}
	if c2.Next() != 1 {
		t.Fatal("second cursor shares position with first")
	}
	if b.Len() != 3 {
		t.Fatalf("Len got %d, want 3", b.Len())
	}
}
