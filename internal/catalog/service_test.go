package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodcat/catalog-preview/internal/cache"
	"github.com/prodcat/catalog-preview/internal/model"
)

func newCatalogServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]*model.Product{
			{ID: "abc123", Name: "Oak Chair", Price: 129.9, ModelURL: "https://cdn.example.com/chair.glb"},
			{ID: "def456", Name: "Pine Table", Price: 349.0},
		})
	})
	mux.HandleFunc("/products/abc123", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode(&model.Product{ID: "abc123", Name: "Oak Chair", Price: 129.9})
	})
	mux.HandleFunc("/products/abc123/variations", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		json.NewEncoder(w).Encode([]*model.ProductVariation{
			{ID: "v1", ProductID: "abc123", Name: "Walnut finish", InStock: true},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestListProducts_ReadThrough(t *testing.T) {
	var hits atomic.Int64
	server := newCatalogServer(t, &hits)

	store := cache.NewMemoryStore()
	svc := NewService(server.URL, store, 5*time.Second)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Oak Chair", products[0].Name)
	assert.True(t, products[0].HasModel())
	assert.False(t, products[1].HasModel())
	assert.Equal(t, int64(1), hits.Load())

	// Second read is served from cache
	_, err = svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load(), "second list should hit the cache")
}

func TestGetProduct_InvalidationForcesRefetch(t *testing.T) {
	var hits atomic.Int64
	server := newCatalogServer(t, &hits)

	store := cache.NewMemoryStore()
	svc := NewService(server.URL, store, 5*time.Second)
	inv := cache.NewInvalidator(store)

	ctx := context.Background()

	_, err := svc.GetProduct(ctx, "abc123")
	require.NoError(t, err)
	_, err = svc.GetProduct(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load(), "repeat read should be cached")

	inv.InvalidateProduct(ctx, "abc123")

	_, err = svc.GetProduct(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(2), hits.Load(), "read after invalidation should refetch")
}

func TestGetVariations(t *testing.T) {
	var hits atomic.Int64
	server := newCatalogServer(t, &hits)

	svc := NewService(server.URL, cache.NewMemoryStore(), 5*time.Second)

	variations, err := svc.GetVariations(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, variations, 1)
	assert.Equal(t, "Walnut finish", variations[0].Name)
	assert.Equal(t, "abc123", variations[0].ProductID)
}

func TestGetProduct_NotFound(t *testing.T) {
	var hits atomic.Int64
	server := newCatalogServer(t, &hits)

	svc := NewService(server.URL, cache.NewMemoryStore(), 5*time.Second)

	_, err := svc.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestCachedFetch_CorruptEntryRefetches(t *testing.T) {
	var hits atomic.Int64
	server := newCatalogServer(t, &hits)

	store := cache.NewMemoryStore()
	svc := NewService(server.URL, store, 5*time.Second)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, cache.ProductKey("abc123"), []byte("{not json"), time.Minute))

	product, err := svc.GetProduct(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Oak Chair", product.Name)
	assert.Equal(t, int64(1), hits.Load())
}
