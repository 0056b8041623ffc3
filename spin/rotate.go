package spin

import "github.com/go-gl/mathgl/mgl64"

// Rotate rotates v counter-clockwise about pivot by delta radians.
func Rotate(v, pivot mgl64.Vec2, delta float64) mgl64.Vec2 {
	p := ToPolar(v.Sub(pivot))
	p.Angle += delta
	return ToEuclidean(p).Add(pivot)
}

// Triangle is three vertices in normalized device coordinates.
// Index order defines the winding.
type Triangle [3]mgl64.Vec2

// Centroid returns the arithmetic mean of the vertices.
func (t Triangle) Centroid() mgl64.Vec2 {
	return t[0].Add(t[1]).Add(t[2]).Mul(1.0 / 3)
}

// Rotate returns t with every vertex rotated about pivot by delta radians.
func (t Triangle) Rotate(pivot mgl64.Vec2, delta float64) Triangle {
	for i := range t {
		t[i] = Rotate(t[i], pivot, delta)
	}
	return t
}
