package catalog

import (
	"context"

	"github.com/prodcat/catalog-preview/internal/model"
)

// ProductCatalog defines the interface for the product data-fetching layer.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	GetVariations(ctx context.Context, productID string) ([]*model.ProductVariation, error)
}
