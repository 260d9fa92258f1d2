package cache

// Key namespace. All catalog cache keys live under "catalog:".
const (
	// KeyProductList holds the cached product listing
	KeyProductList = "catalog:products:list"

	// PrefixProduct is the prefix of individual product record keys
	PrefixProduct = "catalog:product:"

	// PrefixVariations is the prefix of product variation record keys
	PrefixVariations = "catalog:variations:"
)

// ProductKey returns the cache key of one product record
func ProductKey(productID string) string {
	return PrefixProduct + productID
}

// VariationsKey returns the cache key of one product's variation records
func VariationsKey(productID string) string {
	return PrefixVariations + productID
}
