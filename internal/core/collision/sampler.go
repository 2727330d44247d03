package collision

import (
	"fmt"
	"math"

	"github.com/zeusync/collider/internal/core/systems/physics"
)

// RectangleSliceStep is the angular step of every disc slice a rectangle is
// built from.
const RectangleSliceStep = 90

// MaxExtent bounds disc radii and rectangle half extents so point counts and
// slice offsets stay within int range.
const MaxExtent = 1 << 16

// NewDisc samples a filled disc as radial spokes of lattice points.
//
// For every angle 0, step, 2*step, ... 360 (the 0° and 360° spokes are both
// emitted) and every integer radius r in [0, round(radius)], the vector (0, r)
// is rotated by the angle, rounded and offset by round(center).
func NewDisc(radius float64, center physics.Vec2, angularStep int) (*Collider, error) {
	if angularStep <= 0 || 360%angularStep != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAngularStep, angularStep)
	}
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 || math.Round(radius) > MaxExtent {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("%w: got (%v, %v)", ErrInvalidCenter, center.Xv, center.Yv)
	}

	origin := center.Round()
	spokes := 360 / angularStep
	steps := int(math.Round(radius))

	c := &Collider{points: make([]physics.Vec2, 0, (spokes+1)*(steps+1))}
	for k := 0; k <= spokes; k++ {
		angle := float64(k * angularStep)
		for r := 0; r <= steps; r++ {
			p := physics.V2(0, float64(r)).Rotate(angle).Round()
			c.points = append(c.points, p.Add(origin))
		}
	}
	return c, nil
}

// NewRectangle approximates a rectangle by stacking discs of radius halfX
// along its long axis.
//
// The slice count is (2*halfY)/(2*halfX) with integer division, so a
// rectangle with halfY < halfX has no slices and yields an empty collider.
// Slice i sits at (0, sliceCount*i) rotated by rotation degrees.
func NewRectangle(halfX, halfY int, center physics.Vec2, rotation float64) (*Collider, error) {
	if halfX == 0 {
		return nil, fmt.Errorf("%w: got (%d, %d)", ErrZeroHalfExtent, halfX, halfY)
	}
	if halfX < 0 || halfY < 0 {
		return nil, fmt.Errorf("%w: got (%d, %d)", ErrNegativeHalfExtent, halfX, halfY)
	}
	if halfX > MaxExtent || halfY > MaxExtent {
		return nil, fmt.Errorf("%w: got (%d, %d)", ErrExtentTooLarge, halfX, halfY)
	}
	if !center.IsFinite() {
		return nil, fmt.Errorf("%w: got (%v, %v)", ErrInvalidCenter, center.Xv, center.Yv)
	}
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRotation, rotation)
	}

	origin := center.Round()
	sliceCount := (2 * halfY) / (2 * halfX)

	c := &Collider{}
	for i := 0; i < sliceCount; i++ {
		offset := physics.V2(0, float64(sliceCount*i)).Rotate(rotation)
		slice, err := NewDisc(float64(halfX), offset, RectangleSliceStep)
		if err != nil {
			return nil, err
		}
		for _, p := range slice.points {
			c.points = append(c.points, p.Add(origin))
		}
	}
	return c, nil
}
