package cache

import (
	"testing"
	"time"

	"github.com/suryansh-23/redactkit/internal/redact"
)

func key(b byte) redact.CacheKey {
	var k redact.CacheKey
	k[0] = b
	return k
}

func TestCachePutGet(t *testing.T) {
	c := New(2, 5*time.Second)
	c.now = func() time.Time { return time.Unix(100, 0) }

	c.Put(key(1), redact.Result{RedactedText: "a"})
	c.Put(key(2), redact.Result{RedactedText: "b"})

	res, ok := c.Get(key(2))
	if !ok {
		t.Fatalf("expected result")
	}
	if res.RedactedText != "b" {
		t.Fatalf("result = %q", res.RedactedText)
	}
	if c.Len() != 2 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := New(2, 1*time.Second)
	base := time.Unix(100, 0)
	c.now = func() time.Time { return base }

	c.Put(key(1), redact.Result{RedactedText: "a"})

	c.now = func() time.Time { return base.Add(2 * time.Second) }
	if _, ok := c.Get(key(1)); ok {
		t.Fatalf("expected expired result")
	}
	if c.Len() != 0 {
		t.Fatalf("len = %d", c.Len())
	}
}

func TestCacheLRUEviction(t *testing.T) {
	c := New(2, 5*time.Second)
	c.now = func() time.Time { return time.Unix(100, 0) }

	c.Put(key(1), redact.Result{RedactedText: "a"})
	c.Put(key(2), redact.Result{RedactedText: "b"})
	if _, ok := c.Get(key(1)); !ok {
		t.Fatalf("expected result 1")
	}
	c.Put(key(3), redact.Result{RedactedText: "c"})

	if _, ok := c.Get(key(2)); ok {
		t.Fatalf("expected result 2 to be evicted")
	}
	if _, ok := c.Get(key(1)); !ok {
		t.Fatalf("expected recently used result 1 to remain")
	}
}

func TestCacheDisabledWithZeroTTL(t *testing.T) {
	c := New(2, 0)
	c.Put(key(1), redact.Result{RedactedText: "a"})
	if _, ok := c.Get(key(1)); ok {
		t.Fatalf("expected no caching")
	}
}

func TestCacheShrinkAndPurge(t *testing.T) {
	c := New(4, time.Minute)
	for i := byte(0); i < 4; i++ {
		c.Put(key(i), redact.Result{})
	}
	c.SetMaxEntries(1)
	if c.Len() != 1 {
		t.Fatalf("len after shrink = %d", c.Len())
	}
	if _, ok := c.Get(key(3)); !ok {
		t.Fatalf("expected newest entry to survive")
	}
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("len after purge = %d", c.Len())
	}
}

func TestNilCache(t *testing.T) {
	var c *Cache
	c.Put(key(1), redact.Result{})
	if _, ok := c.Get(key(1)); ok {
		t.Fatalf("nil cache returned a result")
	}
}

func TestEngineUsesCache(t *testing.T) {
	c := New(8, time.Minute)
	e := redact.New(nil, redact.WithCache(c))
	first := e.Redact("mail a@b.com", redact.DefaultOptions())
	second := e.Redact("mail a@b.com", redact.DefaultOptions())
	if c.Len() != 1 {
		t.Fatalf("len = %d", c.Len())
	}
	if first.RedactedText != second.RedactedText {
		t.Fatalf("cached result differs: %q vs %q", first.RedactedText, second.RedactedText)
	}
}
