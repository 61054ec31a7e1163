package clock

import "testing"

func TestManualClockAdvanceAndSet(t *testing.T) {
	c := NewManual(100)
	if c.NowNs() != 100 {
		t.Fatalf("expected 100, got %d", c.NowNs())
	}
	c.Advance(5)
	if c.NowNs() != 105 {
		t.Fatalf("expected 105, got %d", c.NowNs())
	}
	c.Set(1)
	if c.NowNs() != 1 {
		t.Fatalf("expected 1, got %d", c.NowNs())
	}
}
