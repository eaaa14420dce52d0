package clock

import (
	"sync"
	"testing"
	"time"
)

func TestAdvanceDays(t *testing.T) {
	anchor := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	c := NewAt(anchor)

	if got := c.Now(); !got.Equal(anchor) {
		t.Fatalf("expected anchor time, got %v", got)
	}

	got := c.AdvanceDays(3)
	want := anchor.Add(3 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("advance 3: got %v, want %v", got, want)
	}

	// Advances accumulate.
	got = c.AdvanceDays(2)
	want = anchor.Add(5 * 24 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("advance 2 more: got %v, want %v", got, want)
	}
	if !c.Now().Equal(want) {
		t.Errorf("Now disagrees with last advance")
	}
}

func TestReset(t *testing.T) {
	c := NewAt(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	c.AdvanceDays(30)

	before := time.Now()
	got := c.Reset()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("reset should re-anchor at wall time, got %v", got)
	}
	if c.Now().Before(before) {
		t.Errorf("offset survived the reset")
	}
}

func TestConcurrentAdvance(t *testing.T) {
	anchor := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	c := NewAt(anchor)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AdvanceDays(1)
		}()
	}
	wg.Wait()

	want := anchor.Add(50 * 24 * time.Hour)
	if got := c.Now(); !got.Equal(want) {
		t.Errorf("expected %v after 50 concurrent advances, got %v", want, got)
	}
}
