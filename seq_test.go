// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull_test

import (
	"errors"
	"reflect"
	"testing"

	"code.hybscloud.com/pull"
)

func TestOfCollectsInOrder(t *testing.T) {
	got := collect[int](t, pull.Of(1, 2, 3, 4, 5))
	want := []int{1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEmptyYieldsNothing(t *testing.T) {
	if got := collect[int](t, pull.Empty[int]()); len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestOneYieldsSingle(t *testing.T) {
	got := collect[string](t, pull.One("x"))
	if len(got) != 1 || got[0] != "x" {
		t.Fatalf("got %v, want [x]", got)
	}
}

func TestRaiseFailsOnTraversal(t *testing.T) {
	boom := errors.New("boom")
	_, err := pull.ToSlice[int](pull.Raise[int](boom))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	s := pull.Append[int](pull.Of(1, 2), pull.Of(3, 4))
	got := collect[int](t, s)
	want := []int{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLazyDeferredUntilTraversal(t *testing.T) {
	forced := false
	s := pull.Lazy(func() pull.Seq[int] {
		forced = true
		return pull.Of(1)
	})
	if forced {
		t.Fatal("Lazy forced at construction")
	}
	got := collect[int](t, s)
	if !forced || len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v forced=%v, want [1] forced=true", got, forced)
	}
}

func TestUnfoldCountsDown(t *testing.T) {
	s := pull.Unfold(5, func(n int) (int, int, bool) {
		if n == 0 {
			return 0, 0, false
		}
		return n, n - 1, true
	})
	got := collect[int](t, s)
	want := []int{5, 4, 3, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFromCursorSinglePass(t *testing.T) {
	s := pull.FromCursor(pull.NewSliceCursor([]int{7, 8, 9}))
	got := collect[int](t, s)
	want := []int{7, 8, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFromBatchReusable(t *testing.T) {
	s := pull.FromBatch(pull.NewSliceBatch([]int{1, 2}))
	first := collect[int](t, s)
	second := collect[int](t, s)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("batch traversals differ: %v vs %v", first, second)
	}
}

func TestNextChainCollects(t *testing.T) {
	got := collect[int](t, nextChain([]int{1, 2, 3}))
	want := []int{1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestMixedSeqCollects(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	got := collect[int](t, mixedSeq(items))
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("got %v, want %v", got, items)
	}
}
