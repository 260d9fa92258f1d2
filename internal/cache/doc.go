package cache

// Package cache provides the key-based product data cache with a Redis
// backend, plus the invalidation helper the UI uses to mark product data
// stale. Keys are hierarchical and invalidation works on key prefixes, so
// one product's record and variations can be dropped without touching the
// rest of the catalog.
