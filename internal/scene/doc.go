package scene

// Package scene validates fetched GLB/GLTF assets and derives what the view
// needs from them: node/mesh counts, a merged bounding box, the fit-to-box
// normalization transform, and orbit camera positions. Rasterization itself
// stays with the rendering engine.
