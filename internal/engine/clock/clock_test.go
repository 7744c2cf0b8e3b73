package clock

import (
	"testing"
	"time"
)

func TestTickAt(t *testing.T) {
	base := time.Unix(1000, 0)
	c := New()

	steps := []struct {
		at     time.Duration
		want   time.Duration
		wantOK bool
	}{
		{0, 0, false},
		{5 * time.Millisecond, 0, false},
		{12 * time.Millisecond, 0, false},
		{15 * time.Millisecond, 15 * time.Millisecond, true},
		{20 * time.Millisecond, 0, false},
		{30 * time.Millisecond, 15 * time.Millisecond, true},
		{2 * time.Second, 100 * time.Millisecond, true},
	}
	for _, s := range steps {
		got, ok := c.TickAt(base.Add(s.at))
		if got != s.want || ok != s.wantOK {
			t.Errorf("TickAt(+%v) = %v, %v, want %v, %v", s.at, got, ok, s.want, s.wantOK)
		}
	}
}

func TestTickUsesSource(t *testing.T) {
	now := time.Unix(0, 0)
	c := NewWithSource(func() time.Time { return now })

	if _, ok := c.Tick(); ok {
		t.Error("first Tick() should not yield a delta")
	}
	now = now.Add(50 * time.Millisecond)
	if got, ok := c.Tick(); !ok || got != 50*time.Millisecond {
		t.Errorf("Tick() = %v, %v, want 50ms, true", got, ok)
	}
}

func TestReset(t *testing.T) {
	base := time.Unix(0, 0)
	c := New()
	c.TickAt(base)
	c.Reset()
	if _, ok := c.TickAt(base.Add(time.Second)); ok {
		t.Error("tick after Reset() should only restart the clock")
	}
}

func TestNoClamp(t *testing.T) {
	base := time.Unix(0, 0)
	c := New()
	c.MaxDelta = 0
	c.TickAt(base)
	if got, _ := c.TickAt(base.Add(time.Second)); got != time.Second {
		t.Errorf("unclamped delta = %v, want 1s", got)
	}
}
