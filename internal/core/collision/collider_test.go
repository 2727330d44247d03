package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

func mustDisc(t *testing.T, radius float64, center physics.Vec2, step int) *Collider {
	t.Helper()
	c, err := NewDisc(radius, center, step)
	require.NoError(t, err)
	return c
}

func TestNewColliderRoundsPoints(t *testing.T) {
	c := NewCollider(physics.V2(0.4, 1.6), physics.V2(-2.5, 3))
	assert.Equal(t, []physics.Vec2{{Xv: 0, Yv: 2}, {Xv: -3, Yv: 3}}, c.Points())
}

func TestIntersectsDisjointAndCoincidentDiscs(t *testing.T) {
	a := mustDisc(t, 1, physics.V2(0, 0), 90)
	b := mustDisc(t, 1, physics.V2(10, 10), 90)
	assert.False(t, Intersects(a, b))

	b = mustDisc(t, 1, physics.V2(0, 0), 90)
	assert.True(t, Intersects(a, b))
}

func TestIntersectsSymmetricAndReflexive(t *testing.T) {
	shapes := []*Collider{
		mustDisc(t, 2, physics.V2(0, 0), 45),
		mustDisc(t, 3, physics.V2(4, 1), 30),
		mustDisc(t, 1, physics.V2(20, 20), 90),
		NewCollider(physics.V2(2, 0)),
		NewCollider(),
	}
	for i, a := range shapes {
		for j, b := range shapes {
			assert.Equal(t, Intersects(a, b), Intersects(b, a), "pair %d,%d", i, j)
		}
		assert.Equal(t, a.Len() > 0, a.Intersects(a), "shape %d", i)
	}
}

func TestIntersectsEmptyAndNil(t *testing.T) {
	assert.False(t, Intersects(NewCollider(), NewCollider()))
	assert.False(t, Intersects(nil, NewCollider(physics.V2(0, 0))))
	var zero Collider
	assert.False(t, zero.Intersects(&zero))
}

func TestTranslateIsInvertible(t *testing.T) {
	c := mustDisc(t, 3, physics.V2(1, 1), 45)
	before := c.Points()

	p1, p2 := physics.V2(0.2, -1.7), physics.V2(13.6, 4.4)
	c.Translate(p2, p1)
	assert.NotEqual(t, before, c.Points())
	c.Translate(p1, p2)
	assert.Equal(t, before, c.Points())
}

func TestTranslateUsesRoundedAnchors(t *testing.T) {
	c := NewCollider(physics.V2(0, 0))
	c.Translate(physics.V2(2.6, 0.4), physics.V2(0.4, 0.6))
	// round(2.6, 0.4) - round(0.4, 0.6) = (3, 0) - (0, 1)
	assert.Equal(t, []physics.Vec2{{Xv: 3, Yv: -1}}, c.Points())

	var nilCollider *Collider
	assert.NotPanics(t, func() { nilCollider.Translate(physics.V2(1, 1), physics.V2(0, 0)) })
}

func TestMergeConcatenatesWithoutAliasing(t *testing.T) {
	a := NewCollider(physics.V2(0, 0), physics.V2(1, 0))
	b := NewCollider(physics.V2(1, 0))
	m := Merge(a, b)

	assert.Equal(t, a.Len()+b.Len(), m.Len())
	assert.Equal(t, []physics.Vec2{{Xv: 0, Yv: 0}, {Xv: 1, Yv: 0}, {Xv: 1, Yv: 0}}, m.Points())

	a.Translate(physics.V2(5, 5), physics.V2(0, 0))
	assert.Equal(t, []physics.Vec2{{Xv: 0, Yv: 0}, {Xv: 1, Yv: 0}, {Xv: 1, Yv: 0}}, m.Points())
}

func TestMergeIntersectsDistributes(t *testing.T) {
	a := mustDisc(t, 1, physics.V2(0, 0), 90)
	b := mustDisc(t, 2, physics.V2(10, 0), 45)
	probes := []*Collider{
		NewCollider(physics.V2(0, 1)),
		NewCollider(physics.V2(12, 0)),
		NewCollider(physics.V2(50, 50)),
		NewCollider(),
		mustDisc(t, 6, physics.V2(5, 0), 15),
	}
	m := Merge(a, b)
	for i, c := range probes {
		assert.Equal(t, Intersects(a, c) || Intersects(b, c), Intersects(m, c), "probe %d", i)
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := mustDisc(t, 1, physics.V2(0, 0), 90)
	clone := c.Clone()
	assert.True(t, c.Equal(clone))

	clone.Translate(physics.V2(1, 0), physics.V2(0, 0))
	assert.False(t, c.Equal(clone))
	assert.Equal(t, physics.V2(0, 0), c.Points()[0])
}

func TestEqualIsOrderSensitive(t *testing.T) {
	a := NewCollider(physics.V2(0, 0), physics.V2(1, 1))
	b := NewCollider(physics.V2(1, 1), physics.V2(0, 0))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))
	assert.True(t, NewCollider().Equal(nil))
}

func TestFingerprintFollowsEquality(t *testing.T) {
	a := mustDisc(t, 2, physics.V2(3, 3), 30)
	b := mustDisc(t, 2, physics.V2(3, 3), 30)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	// points produced through negative-zero intermediate values hash the same
	z := NewCollider(physics.V2(-0.3, 0.2))
	assert.Equal(t, NewCollider(physics.V2(0, 0)).Fingerprint(), z.Fingerprint())

	b.Translate(physics.V2(1, 0), physics.V2(0, 0))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func TestBounds(t *testing.T) {
	_, _, ok := NewCollider().Bounds()
	assert.False(t, ok)

	lo, hi, ok := mustDisc(t, 2, physics.V2(1, -1), 90).Bounds()
	require.True(t, ok)
	assert.Equal(t, physics.V2(-1, -3), lo)
	assert.Equal(t, physics.V2(3, 1), hi)
}
