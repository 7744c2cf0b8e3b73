package dirty

import "testing"

func TestValueBuildsOnFirstGet(t *testing.T) {
	calls := 0
	v := New(func() int {
		calls++
		return 42
	})
	if !v.Dirty() {
		t.Error("new value should start dirty")
	}
	if got := v.Get(); got != 42 {
		t.Errorf("Get() = %d, want 42", got)
	}
	if calls != 1 {
		t.Errorf("build calls = %d, want 1", calls)
	}
}

func TestValueCaches(t *testing.T) {
	calls := 0
	v := New(func() int {
		calls++
		return calls
	})
	v.Get()
	v.Get()
	if calls != 1 {
		t.Errorf("build calls after two Gets = %d, want 1", calls)
	}
	if v.Dirty() {
		t.Error("value should be clean after Get")
	}
}

func TestValueInvalidateRebuilds(t *testing.T) {
	source := 1
	v := New(func() int { return source * 10 })
	if got := v.Get(); got != 10 {
		t.Errorf("Get() = %d, want 10", got)
	}

	source = 2
	if got := v.Get(); got != 10 {
		t.Errorf("Get() before Invalidate = %d, want cached 10", got)
	}

	v.Invalidate()
	if got := v.Get(); got != 20 {
		t.Errorf("Get() after Invalidate = %d, want 20", got)
	}
}
