// Package physics holds the 2D point type shared by colliders, hosts and the
// frame systems. Colliders only ever hold lattice points, so the point type
// doubles as the anchor position type.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D point or offset.
type Vec2 struct{ Xv, Yv float64 }

// V2 is a shorthand constructor.
func V2(x, y float64) Vec2 { return Vec2{Xv: x, Yv: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.Xv + o.Xv, v.Yv + o.Yv} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.Xv - o.Xv, v.Yv - o.Yv} }

// Round rounds both components to the nearest integer, halves away from zero.
// Negative zero is normalised so rounded points compare and hash the same.
func (v Vec2) Round() Vec2 {
	return Vec2{roundComponent(v.Xv), roundComponent(v.Yv)}
}

func roundComponent(f float64) float64 {
	r := math.Round(f)
	if r == 0 {
		return 0
	}
	return r
}

// Rotate rotates v counter-clockwise about the origin by deg degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	r := mgl64.Rotate2D(mgl64.DegToRad(deg)).Mul2x1(mgl64.Vec2{v.Xv, v.Yv})
	return Vec2{r[0], r[1]}
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.Xv) && !math.IsInf(v.Xv, 0) && !math.IsNaN(v.Yv) && !math.IsInf(v.Yv, 0)
}

// Transform2D is the anchor transform a host attaches to an entity.
type Transform2D struct{ Pos Vec2 }

// Distance computes Euclidean distance between two points.
func Distance(a, b Vec2) float64 { return math.Hypot(b.Xv-a.Xv, b.Yv-a.Yv) }
