package collision

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

// Collider is a discrete point cloud approximating a 2D region. Every stored
// point is rounded to the integer lattice, and two colliders touch when they
// share at least one point. Order is insertion order; duplicates are kept.
//
// The zero value is an empty collider. A nil *Collider behaves as empty for
// every read-only operation.
type Collider struct {
	points []physics.Vec2
}

// NewCollider builds a collider from arbitrary points, rounding each one.
func NewCollider(points ...physics.Vec2) *Collider {
	c := &Collider{points: make([]physics.Vec2, len(points))}
	for i, p := range points {
		c.points[i] = p.Round()
	}
	return c
}

// Len returns the number of stored points, duplicates included.
func (c *Collider) Len() int {
	if c == nil {
		return 0
	}
	return len(c.points)
}

// Points returns a copy of the point sequence.
func (c *Collider) Points() []physics.Vec2 {
	if c == nil {
		return nil
	}
	out := make([]physics.Vec2, len(c.points))
	copy(out, c.points)
	return out
}

// Translate shifts every point by round(newAnchor) - round(oldAnchor), in place.
func (c *Collider) Translate(newAnchor, oldAnchor physics.Vec2) {
	delta := newAnchor.Round().Sub(oldAnchor.Round())
	if c == nil || delta == (physics.Vec2{}) {
		return
	}
	for i := range c.points {
		c.points[i] = c.points[i].Add(delta)
	}
}

// Clone deep-copies the point sequence.
func (c *Collider) Clone() *Collider {
	return &Collider{points: c.Points()}
}

// Merge returns a new collider holding a's points followed by b's.
func Merge(a, b *Collider) *Collider {
	out := &Collider{points: make([]physics.Vec2, 0, a.Len()+b.Len())}
	if a != nil {
		out.points = append(out.points, a.points...)
	}
	if b != nil {
		out.points = append(out.points, b.points...)
	}
	return out
}

// Intersects reports whether c and other share a point.
func (c *Collider) Intersects(other *Collider) bool {
	return Intersects(c, other)
}

// Intersects reports whether a and b share at least one exactly-equal point.
func Intersects(a, b *Collider) bool {
	if a.Len() == 0 || b.Len() == 0 {
		return false
	}
	for _, p := range a.points {
		for _, q := range b.points {
			if p == q {
				return true
			}
		}
	}
	return false
}

// Equal reports sequence equality: same length and same points in the same order.
func (c *Collider) Equal(other *Collider) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i := 0; i < c.Len(); i++ {
		if c.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// Fingerprint hashes the ordered point sequence. Equal colliders always have
// equal fingerprints.
func (c *Collider) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [16]byte
	for i := 0; i < c.Len(); i++ {
		p := c.points[i]
		// +0 folds negative zero into positive zero.
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(p.Xv+0))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Yv+0))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Bounds returns the axis-aligned extent of the point cloud. ok is false for
// an empty collider.
func (c *Collider) Bounds() (lo, hi physics.Vec2, ok bool) {
	if c.Len() == 0 {
		return lo, hi, false
	}
	lo, hi = c.points[0], c.points[0]
	for _, p := range c.points[1:] {
		lo.Xv = math.Min(lo.Xv, p.Xv)
		lo.Yv = math.Min(lo.Yv, p.Yv)
		hi.Xv = math.Max(hi.Xv, p.Xv)
		hi.Yv = math.Max(hi.Yv, p.Yv)
	}
	return lo, hi, true
}
