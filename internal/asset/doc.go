package asset

// Package asset implements remote model fetching. It downloads a GLB/GLTF
// asset over HTTP and materializes the bytes as a temp file — the local
// resource handle the renderer reads from without refetching. Handles are
// released exactly once on session teardown.
