package cache

import (
	"testing"
	"time"
)

func TestTTLCacheEvictsOldestWhenFull(t *testing.T) {
	c, err := NewTTL[string, int](2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected oldest key evicted")
	}
	if v, ok := c.Get("b"); !ok || v != 2 {
		t.Fatalf("expected b=2 retained, got %v %v", v, ok)
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Fatalf("expected c=3 retained, got %v %v", v, ok)
	}
}

func TestTTLCacheRecentUseProtectsEntry(t *testing.T) {
	c, err := NewTTL[string, int](2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected recently used key retained")
	}
	if _, ok := c.Get("b"); ok {
		t.Fatalf("expected least recently used key evicted")
	}
}

func TestTTLCacheExpiresEntries(t *testing.T) {
	c, err := NewTTL[string, int](8, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Set("a", 1)
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("expected fresh entry present")
	}

	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get("a"); ok {
		t.Fatalf("expected entry expired")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry removed, len=%d", c.Len())
	}
}

func TestTTLCacheZeroTTLNeverExpires(t *testing.T) {
	c, err := NewTTL[string, int](8, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Set("a", 1)
	time.Sleep(10 * time.Millisecond)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Fatalf("expected entry retained without TTL, got %v %v", v, ok)
	}
}

func TestTTLCachePurge(t *testing.T) {
	c, err := NewTTL[string, int](8, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.Set("a", 1)
	c.Set("b", 2)
	c.Purge()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache after purge, len=%d", c.Len())
	}
}
