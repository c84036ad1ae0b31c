package cache

import (
	"strings"
	"testing"
)

func TestHashKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
	}{
		{name: "single part", parts: []string{"posts"}},
		{name: "multiple parts", parts: []string{"posts", "by", "author", "42"}},
		{name: "empty parts", parts: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed1 := HashKey(tt.parts...)
			hashed2 := HashKey(tt.parts...)

			if hashed1 != hashed2 {
				t.Errorf("HashKey() should be consistent, got %s and %s", hashed1, hashed2)
			}

			// MD5 hex is 32 characters
			if len(hashed1) != 32 {
				t.Errorf("HashKey() should return 32 character hex string, got length %d", len(hashed1))
			}
		})
	}

	if HashKey("a", "b") == HashKey("a", "c") {
		t.Error("Different parts should produce different keys")
	}
}

func TestNamespaceKey(t *testing.T) {
	key := namespaceKey("posts:all")
	if !strings.HasPrefix(key, "inkwell:") {
		t.Errorf("Expected namespaced key, got %s", key)
	}
	if key != "inkwell:posts:all" {
		t.Errorf("Unexpected key %s", key)
	}
}

func TestDisabledCacheIsSafe(t *testing.T) {
	var c *Cache

	if err := c.SetJSON("k", "v", 0); err != ErrCacheDisabled {
		t.Errorf("Expected ErrCacheDisabled, got %v", err)
	}
	var out string
	if err := c.GetJSON("k", &out); err != ErrCacheDisabled {
		t.Errorf("Expected ErrCacheDisabled, got %v", err)
	}
	if err := c.Delete("k"); err != ErrCacheDisabled {
		t.Errorf("Expected ErrCacheDisabled, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close on a nil cache should be a no-op, got %v", err)
	}
}
