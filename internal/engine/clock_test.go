package engine

import (
	"testing"
	"time"
)

func TestManualClock(t *testing.T) {
	c := NewManualClock(time.Second)
	if c.Now() != time.Second {
		t.Fatalf("Now = %v", c.Now())
	}
	if got := c.Advance(250 * ms); got != 1250*ms {
		t.Errorf("Advance = %v", got)
	}
	c.Advance(-time.Second)
	c.Set(100 * ms) // назад нельзя
	if c.Now() != 1250*ms {
		t.Errorf("clock went backwards: %v", c.Now())
	}
	c.Set(2 * time.Second)
	if c.Now() != 2*time.Second {
		t.Errorf("Set = %v", c.Now())
	}
}

func TestSystemClock_Monotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.Now()
	b := c.Now()
	if a < 0 || b < a {
		t.Errorf("system clock not monotonic: %v then %v", a, b)
	}
}
