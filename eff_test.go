// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pull_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/pull"
)

func TestPureRun(t *testing.T) {
	v, err := pull.Run(pull.Pure(42))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestFaultRun(t *testing.T) {
	boom := errors.New("boom")
	_, err := pull.Run(pull.Fault[int](boom))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

func TestDeferIsLazy(t *testing.T) {
	forced := false
	m := pull.Defer(func() pull.Eff[int] {
		forced = true
		return pull.Pure(1)
	})
	if forced {
		t.Fatal("Defer forced at construction")
	}
	v, err := pull.Run(m)
	if err != nil || v != 1 {
		t.Fatalf("got (%d, %v), want (1, nil)", v, err)
	}
	if !forced {
		t.Fatal("Defer never forced by Run")
	}
}

func TestBindSequencing(t *testing.T) {
	m := pull.Bind(pull.Pure(20), func(n int) pull.Eff[int] {
		return pull.Pure(n + 22)
	})
	v, err := pull.Run(m)
	if err != nil || v != 42 {
		t.Fatalf("got (%d, %v), want (42, nil)", v, err)
	}
}

func TestBindShortCircuitsOnError(t *testing.T) {
	boom := errors.New("boom")
	called := false
	m := pull.Bind(pull.Fault[int](boom), func(n int) pull.Eff[int] {
		called = true
		return pull.Pure(n)
	})
	_, err := pull.Run(m)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
	if called {
		t.Fatal("continuation called after failure")
	}
}

func TestBindDeepChainStackSafe(t *testing.T) {
	const depth = 200_000
	m := pull.Pure(0)
	for range depth {
		m = pull.Bind(m, func(n int) pull.Eff[int] {
			return pull.Pure(n + 1)
		})
	}
	v, err := pull.Run(m)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if v != depth {
		t.Fatalf("got %d, want %d", v, depth)
	}
}

func TestMapEff(t *testing.T) {
	m := pull.MapEff(pull.Pure(21), func(n int) int { return n * 2 })
	v, err := pull.Run(m)
	if err != nil || v != 42 {
		t.Fatalf("got (%d, %v), want (42, nil)", v, err)
	}
}

func TestMapEffPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	m := pull.MapEff(pull.Fault[int](boom), func(n int) int { return n })
	if _, err := pull.Run(m); !errors.Is(err, boom) {
		t.Fatalf("got %v, want %v", err, boom)
	}
}

func TestAttemptMaterializesFailure(t *testing.T) {
	boom := errors.New("boom")
	out, err := pull.Run(pull.Attempt(pull.Fault[int](boom)))
	if err != nil {
		t.Fatalf("Attempt must not fail, got %v", err)
	}
	e, ok := out.GetLeft()
	if !ok || !errors.Is(e, boom) {
		t.Fatalf("got (%v, %v), want Left(boom)", e, ok)
	}
}

func TestAttemptPassesSuccess(t *testing.T) {
	out, err := pull.Run(pull.Attempt(pull.Pure(7)))
	if err != nil {
		t.Fatalf("Attempt error: %v", err)
	}
	v, ok := out.GetRight()
	if !ok || v != 7 {
		t.Fatalf("got (%d, %v), want Right(7)", v, ok)
	}
}
