package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
)

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.glb"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoad_InvalidAsset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.glb")
	if err := os.WriteFile(path, []byte("this is not a model"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for invalid asset bytes")
	}
}

func TestSummarize_CountsAndBounds(t *testing.T) {
	doc := &gltf.Document{
		Asset: gltf.Asset{Version: "2.0"},
		Nodes: []*gltf.Node{{Name: "root"}, {Name: "leg"}},
		Meshes: []*gltf.Mesh{
			{Name: "body"},
		},
		Accessors: []*gltf.Accessor{
			{
				ComponentType: gltf.ComponentFloat,
				Type:          gltf.AccessorVec3,
				Count:         24,
				Min:           []float64{-0.5, 0, -0.25},
				Max:           []float64{0.5, 2, 0.25},
			},
			{
				ComponentType: gltf.ComponentFloat,
				Type:          gltf.AccessorVec3,
				Count:         12,
				Min:           []float64{-1, -0.5, 0},
				Max:           []float64{0, 0.5, 1},
			},
			// Index accessor, ignored for bounds
			{
				ComponentType: gltf.ComponentUshort,
				Type:          gltf.AccessorScalar,
				Count:         36,
			},
		},
	}

	s := summarize(doc)

	if s.NodeCount != 2 {
		t.Errorf("Expected 2 nodes, got %d", s.NodeCount)
	}
	if s.MeshCount != 1 {
		t.Errorf("Expected 1 mesh, got %d", s.MeshCount)
	}
	if !s.HasBounds {
		t.Fatal("Expected bounds to be derived")
	}

	expectedMin := [3]float64{-1, -0.5, -0.25}
	expectedMax := [3]float64{0.5, 2, 1}
	if s.BoundsMin != expectedMin {
		t.Errorf("BoundsMin = %v, expected %v", s.BoundsMin, expectedMin)
	}
	if s.BoundsMax != expectedMax {
		t.Errorf("BoundsMax = %v, expected %v", s.BoundsMax, expectedMax)
	}
}

func TestSummarize_NoBounds(t *testing.T) {
	doc := &gltf.Document{Asset: gltf.Asset{Version: "2.0"}}

	s := summarize(doc)
	if s.HasBounds {
		t.Error("Empty document should have no bounds")
	}

	fit := s.Fit()
	if fit.Scale != 1 {
		t.Errorf("Unbounded model should get identity scale, got %v", fit.Scale)
	}
	if fit.Offset != ([3]float64{}) {
		t.Errorf("Unbounded model should get zero offset, got %v", fit.Offset)
	}
}

func TestSummary_Fit(t *testing.T) {
	s := &Summary{
		BoundsMin: [3]float64{1, 0, -1},
		BoundsMax: [3]float64{3, 4, 1},
		HasBounds: true,
	}

	fit := s.Fit()

	// Largest edge is 4, so scale is 0.25
	if math.Abs(fit.Scale-0.25) > 1e-9 {
		t.Errorf("Expected scale 0.25, got %v", fit.Scale)
	}

	// Center (2, 2, 0) scaled and negated
	expected := [3]float64{-0.5, -0.5, 0}
	for i := 0; i < 3; i++ {
		if math.Abs(fit.Offset[i]-expected[i]) > 1e-9 {
			t.Errorf("Offset[%d] = %v, expected %v", i, fit.Offset[i], expected[i])
		}
	}
}

func TestOrbitPosition(t *testing.T) {
	// Zero yaw/pitch looks down the z axis
	pos := OrbitPosition(4, 0, 0)
	if math.Abs(pos[0]) > 1e-9 || math.Abs(pos[1]) > 1e-9 || math.Abs(pos[2]-4) > 1e-9 {
		t.Errorf("OrbitPosition(4,0,0) = %v, expected (0,0,4)", pos)
	}

	// Straight up
	pos = OrbitPosition(2, 0, 90)
	if math.Abs(pos[1]-2) > 1e-9 {
		t.Errorf("OrbitPosition(2,0,90) y = %v, expected 2", pos[1])
	}

	// Distance is preserved for any orientation
	pos = OrbitPosition(5, 123, -37)
	norm := math.Sqrt(pos[0]*pos[0] + pos[1]*pos[1] + pos[2]*pos[2])
	if math.Abs(norm-5) > 1e-9 {
		t.Errorf("Orbit position norm = %v, expected 5", norm)
	}
}
