package spin

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultStep is the rotation applied each frame, in radians.
const DefaultStep = 0.001

// DefaultTriangle returns the triangle drawn at startup.
func DefaultTriangle() Triangle {
	return Triangle{
		{-0.5, -0.5},
		{0, -0.5},
		{0.5, 0.25},
	}
}

// PivotMode selects the point a Scene rotates about.
type PivotMode int

const (
	PivotCentroid PivotMode = iota // Centroid of the initial triangle.
	PivotOrigin                    // Origin of normalized device coordinates.
)

func (m PivotMode) String() string {
	switch m {
	case PivotCentroid:
		return "centroid"
	case PivotOrigin:
		return "origin"
	default:
		return fmt.Sprintf("PivotMode(%d)", int(m))
	}
}

// Set parses s into m. It allows a PivotMode to be used as a flag.Value.
func (m *PivotMode) Set(s string) error {
	switch s {
	case "centroid":
		*m = PivotCentroid
	case "origin":
		*m = PivotOrigin
	default:
		return fmt.Errorf("unknown pivot mode %q, want centroid or origin", s)
	}
	return nil
}

// Scene is the complete state of the animation between two frames.
type Scene struct {
	Triangle Triangle
	Pivot    mgl64.Vec2 // Fixed for the lifetime of the scene.
	Step     float64    // Radians per frame.
	Frame    uint64     // Number of updates applied so far.
}

// NewScene returns a scene for t. The pivot is computed once, here.
func NewScene(t Triangle, mode PivotMode, step float64) Scene {
	s := Scene{
		Triangle: t,
		Step:     step,
	}
	if mode == PivotCentroid {
		s.Pivot = t.Centroid()
	}
	return s
}

// Update returns the scene advanced by one frame.
func (s Scene) Update() Scene {
	s.Triangle = s.Triangle.Rotate(s.Pivot, s.Step)
	s.Frame++
	return s
}
