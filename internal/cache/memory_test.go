package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStore_GetSet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "catalog:product:1"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected cache miss, got %v", err)
	}

	if err := store.Set(ctx, "catalog:product:1", []byte(`{"id":"1"}`), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := store.Get(ctx, "catalog:product:1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(data) != `{"id":"1"}` {
		t.Errorf("Unexpected value: %s", data)
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "k", []byte("v"), time.Nanosecond)
	time.Sleep(5 * time.Millisecond)

	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("Expected expired entry to miss, got %v", err)
	}
}

func TestMemoryStore_ZeroTTLNotCached(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, "k", []byte("v"), 0)
	if store.Len() != 0 {
		t.Error("Zero TTL entries should not be stored")
	}
}

func TestMemoryStore_DeleteByPrefix(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	store.Set(ctx, KeyProductList, []byte("list"), time.Minute)
	store.Set(ctx, ProductKey("a"), []byte("a"), time.Minute)
	store.Set(ctx, ProductKey("b"), []byte("b"), time.Minute)
	store.Set(ctx, VariationsKey("a"), []byte("va"), time.Minute)

	if err := store.DeleteByPrefix(ctx, PrefixProduct); err != nil {
		t.Fatalf("DeleteByPrefix failed: %v", err)
	}

	if _, err := store.Get(ctx, ProductKey("a")); !errors.Is(err, ErrCacheMiss) {
		t.Error("Product record should be gone")
	}
	if _, err := store.Get(ctx, ProductKey("b")); !errors.Is(err, ErrCacheMiss) {
		t.Error("Product record should be gone")
	}
	if _, err := store.Get(ctx, KeyProductList); err != nil {
		t.Error("Product list must survive a product-prefix delete")
	}
	if _, err := store.Get(ctx, VariationsKey("a")); err != nil {
		t.Error("Variations must survive a product-prefix delete")
	}
}
