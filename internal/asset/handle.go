package asset

import (
	"sync"

	"github.com/prodcat/catalog-preview/internal/platform"
)

// Handle is a temporary, process-local reference to downloaded asset bytes.
// The renderer reads from Path; Release deletes the file and is safe to call
// more than once.
type Handle struct {
	ID   string
	URL  string
	Path string
	Size int64

	mu       sync.Mutex
	released bool
}

// Release deletes the underlying temp file. Only the first call removes the
// file; later calls are no-ops.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.released {
		return nil
	}
	h.released = true

	return platform.RemoveFileIfExists(h.Path)
}

// Released reports whether the handle has been released
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}
