package cache

import (
	"testing"
	"time"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Errorf("unexpected hit for missing key")
	}

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, found := c.Get("k")
	if !found || string(val) != "v" {
		t.Errorf("Get(k) = %q, %v; want v, true", val, found)
	}

	if err := c.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, found := c.Get("k"); found {
		t.Errorf("key survived Delete")
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if err := c.Set("short", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if _, found := c.Get("short"); found {
		t.Errorf("entry should have expired")
	}
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("a", []byte("1"), time.Minute)
	c.Set("b", []byte("2"), time.Minute)

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found := c.Get("a"); found {
		t.Errorf("cache not cleared")
	}
}

func TestKeyIsStableAndNamespaced(t *testing.T) {
	k1 := Key("https://example.com/api?x=1")
	k2 := Key("https://example.com/api?x=1")
	if k1 != k2 {
		t.Errorf("same input produced different keys")
	}
	if k1 == Key("https://example.com/api?x=2") {
		t.Errorf("different inputs collided")
	}
	if k1[:13] != "astroguard:v1" {
		t.Errorf("key missing namespace prefix: %s", k1)
	}
}
