package asset

import "context"

// Fetcher defines the interface for the asset fetch service.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Handle, error)
}
