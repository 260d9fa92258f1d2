package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/prodcat/catalog-preview/internal/cache"
	"github.com/prodcat/catalog-preview/internal/logging"
	"github.com/prodcat/catalog-preview/internal/model"
)

// Cache TTL for product data
const DefaultTTL = 5 * time.Minute

// Service fetches product data from the catalog API through the cache
type Service struct {
	baseURL string
	client  *http.Client
	store   cache.Store
	ttl     time.Duration
	log     zerolog.Logger
}

// NewService creates a catalog service for the given API base URL
func NewService(baseURL string, store cache.Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		store:   store,
		ttl:     DefaultTTL,
		log:     logging.NewLogger("catalog"),
	}
}

// ListProducts returns the product listing, cached under the list key
func (s *Service) ListProducts(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := s.cachedFetch(ctx, cache.KeyProductList, "/products", &products)
	return products, err
}

// GetProduct returns one product record
func (s *Service) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	path := "/products/" + url.PathEscape(productID)
	if err := s.cachedFetch(ctx, cache.ProductKey(productID), path, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetVariations returns the variation records of one product
func (s *Service) GetVariations(ctx context.Context, productID string) ([]*model.ProductVariation, error) {
	var variations []*model.ProductVariation
	path := "/products/" + url.PathEscape(productID) + "/variations"
	err := s.cachedFetch(ctx, cache.VariationsKey(productID), path, &variations)
	return variations, err
}

// cachedFetch reads through the cache: hit decodes the cached bytes, miss
// fetches from the API and stores the raw body. Cache write failures only
// degrade to uncached reads.
func (s *Service) cachedFetch(ctx context.Context, key, path string, out any) error {
	if data, err := s.store.Get(ctx, key); err == nil {
		if err := json.Unmarshal(data, out); err == nil {
			return nil
		}
		// Corrupt entry, drop it and refetch
		_ = s.store.DeleteByPrefix(ctx, key)
	}

	data, err := s.fetch(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}

	if err := s.store.Set(ctx, key, data, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache catalog response")
	}
	return nil
}

func (s *Service) fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog request %s: status %d", path, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog response: %w", err)
	}
	return data, nil
}
