package cache

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/prodcat/catalog-preview/internal/logging"
)

// Invalidator marks product data stale in the cache so the data layer
// refetches it on the next read. Invalidation is fire-and-forget: backend
// errors are logged, never surfaced to callers.
type Invalidator struct {
	store Store
	log   zerolog.Logger
}

// NewInvalidator creates an invalidation helper over the given store.
func NewInvalidator(store Store) *Invalidator {
	return &Invalidator{
		store: store,
		log:   logging.NewLogger("cache"),
	}
}

// InvalidateAllProducts marks the product list, all individual product
// records, and all variation records stale.
func (inv *Invalidator) InvalidateAllProducts(ctx context.Context) {
	inv.deletePrefix(ctx, KeyProductList)
	inv.deletePrefix(ctx, PrefixProduct)
	inv.deletePrefix(ctx, PrefixVariations)

	CacheInvalidations.WithLabelValues("all").Inc()
	inv.log.Debug().Msg("invalidated all product cache entries")
}

// InvalidateProduct marks one product's record and its variations stale.
// The id is passed through unvalidated.
func (inv *Invalidator) InvalidateProduct(ctx context.Context, productID string) {
	inv.deletePrefix(ctx, ProductKey(productID))
	inv.deletePrefix(ctx, VariationsKey(productID))

	CacheInvalidations.WithLabelValues("product").Inc()
	inv.log.Debug().Str("product_id", productID).Msg("invalidated product cache entries")
}

func (inv *Invalidator) deletePrefix(ctx context.Context, prefix string) {
	if err := inv.store.DeleteByPrefix(ctx, prefix); err != nil {
		inv.log.Warn().Err(err).Str("prefix", prefix).Msg("cache invalidation failed")
	}
}
