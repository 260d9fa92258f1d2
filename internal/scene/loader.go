package scene

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
)

// Summary describes a loaded model at the level the preview dialog shows
type Summary struct {
	NodeCount int
	MeshCount int

	// Merged bounding box over all float VEC3 accessors that declare
	// min/max (position accessors must per the glTF spec)
	BoundsMin [3]float64
	BoundsMax [3]float64
	HasBounds bool
}

// FitTransform is the normalization that centers the model and scales it
// uniformly into a unit box
type FitTransform struct {
	Scale  float64
	Offset [3]float64
}

// Load opens and validates a GLB/GLTF file. A failure here is the
// render/parse error of the session error taxonomy: the bytes arrived but do
// not form a valid scene.
func Load(path string) (*Summary, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("invalid model asset: %w", err)
	}
	return summarize(doc), nil
}

// summarize extracts counts and bounds from a parsed document
func summarize(doc *gltf.Document) *Summary {
	s := &Summary{
		NodeCount: len(doc.Nodes),
		MeshCount: len(doc.Meshes),
	}

	for _, acc := range doc.Accessors {
		if acc == nil {
			continue
		}
		if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
			continue
		}
		if len(acc.Min) != 3 || len(acc.Max) != 3 {
			continue
		}

		if !s.HasBounds {
			for i := 0; i < 3; i++ {
				s.BoundsMin[i] = float64(acc.Min[i])
				s.BoundsMax[i] = float64(acc.Max[i])
			}
			s.HasBounds = true
			continue
		}
		for i := 0; i < 3; i++ {
			s.BoundsMin[i] = math.Min(s.BoundsMin[i], float64(acc.Min[i]))
			s.BoundsMax[i] = math.Max(s.BoundsMax[i], float64(acc.Max[i]))
		}
	}

	return s
}

// Center returns the bounding box center
func (s *Summary) Center() [3]float64 {
	var c [3]float64
	if !s.HasBounds {
		return c
	}
	for i := 0; i < 3; i++ {
		c[i] = (s.BoundsMin[i] + s.BoundsMax[i]) / 2
	}
	return c
}

// MaxDimension returns the largest bounding box edge
func (s *Summary) MaxDimension() float64 {
	if !s.HasBounds {
		return 0
	}
	max := 0.0
	for i := 0; i < 3; i++ {
		if d := s.BoundsMax[i] - s.BoundsMin[i]; d > max {
			max = d
		}
	}
	return max
}

// Fit returns the transform that centers the model at the origin and scales
// it to fit a unit box. Degenerate or unbounded models get the identity.
func (s *Summary) Fit() FitTransform {
	dim := s.MaxDimension()
	if dim <= 0 {
		return FitTransform{Scale: 1}
	}

	scale := 1 / dim
	center := s.Center()

	var offset [3]float64
	for i := 0; i < 3; i++ {
		offset[i] = -center[i] * scale
	}
	return FitTransform{Scale: scale, Offset: offset}
}
