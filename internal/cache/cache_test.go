package cache

import (
	"testing"
	"time"
)

func TestGetAfterSet(t *testing.T) {
	c := New[string](5 * time.Minute)

	c.Set("odds_nba", "payload")

	value, ok := c.Get("odds_nba")
	if !ok {
		t.Fatal("expected cache hit immediately after set")
	}
	if value != "payload" {
		t.Errorf("expected %q, got %q", "payload", value)
	}
}

func TestGetMissing(t *testing.T) {
	c := New[string](5 * time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Fatal("expected miss for a key never set")
	}
}

func TestEntryExpires(t *testing.T) {
	current := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	c := New[int](5 * time.Minute)
	c.now = func() time.Time { return current }

	c.Set("key", 42)

	current = current.Add(4 * time.Minute)
	if _, ok := c.Get("key"); !ok {
		t.Fatal("entry should still be readable before TTL")
	}

	// Age exactly equal to TTL counts as expired.
	current = current.Add(time.Minute)
	if _, ok := c.Get("key"); ok {
		t.Fatal("entry at TTL age should be treated as absent")
	}
}

func TestSetOverwritesAndRestamps(t *testing.T) {
	current := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	c := New[int](5 * time.Minute)
	c.now = func() time.Time { return current }

	c.Set("key", 1)
	current = current.Add(4 * time.Minute)
	c.Set("key", 2)
	current = current.Add(4 * time.Minute)

	value, ok := c.Get("key")
	if !ok {
		t.Fatal("overwrite should have restarted the TTL clock")
	}
	if value != 2 {
		t.Errorf("expected overwritten value 2, got %d", value)
	}
}
