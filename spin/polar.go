// Package spin rotates 2D points about a pivot by way of polar coordinates.
package spin

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Polar is a point given as a distance from the origin and an angle
// in radians, measured counter-clockwise from the positive X axis.
type Polar struct {
	Radius float64
	Angle  float64
}

// ToPolar converts v to polar coordinates.
// The angle is in (-π, π]; the origin maps to the zero Polar.
func ToPolar(v mgl64.Vec2) Polar {
	return Polar{
		Radius: v.Len(),
		Angle:  math.Atan2(v.Y(), v.X()),
	}
}

// ToEuclidean converts p back to Cartesian coordinates.
func ToEuclidean(p Polar) mgl64.Vec2 {
	sin, cos := math.Sincos(p.Angle)
	return mgl64.Vec2{p.Radius * cos, p.Radius * sin}
}
