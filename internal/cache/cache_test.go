package cache

import (
	"sync"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		periods   int
		expected  string
	}{
		{"Standard terms", 50000, 0.05, 36, "schedule:50000.00:0.050000:36"},
		{"Zero rate", 12000, 0, 12, "schedule:12000.00:0.000000:12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Key(tt.principal, tt.rate, tt.periods); result != tt.expected {
				t.Errorf("Key() = %s, expected %s", result, tt.expected)
			}
		})
	}
}

func TestKeyDistinguishesTerms(t *testing.T) {
	if Key(50000, 0.05, 36) == Key(50000, 0.05, 37) {
		t.Error("Key() should differ when periods differ")
	}
	if Key(50000, 0.05, 36) == Key(50000, 0.055, 36) {
		t.Error("Key() should differ when rate differs")
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache()

	if _, ok := c.Get("missing"); ok {
		t.Error("Get() on empty cache should miss")
	}

	if err := c.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	val, ok := c.Get("k")
	if !ok || val != "v" {
		t.Errorf("Get() = (%q, %v), expected (\"v\", true)", val, ok)
	}
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Set("shared", "value")
		}()
		go func() {
			defer wg.Done()
			_, _ = c.Get("shared")
		}()
	}
	wg.Wait()

	if val, ok := c.Get("shared"); !ok || val != "value" {
		t.Errorf("Get() = (%q, %v), expected (\"value\", true)", val, ok)
	}
}
