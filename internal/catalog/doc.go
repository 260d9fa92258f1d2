package catalog

// Package catalog implements the product data-fetching layer: a JSON HTTP
// client for the catalog API with read-through caching. Invalidating a key
// prefix in the cache makes the next read refetch from the API.
