// Package donburihost lets a donburi ECS world act as the collision host.
// Colliders and anchors live in donburi components; the host walks every
// entity that has both.
package donburihost

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/zeusync/collider/internal/core/collision"
	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

var (
	Collider  = donburi.NewComponentType[collision.Collider]()
	Transform = donburi.NewComponentType[physics.Transform2D]()
)

var _ collision.Host = (*Host)(nil)

type Host struct {
	world donburi.World
	query *donburi.Query
}

func New(world donburi.World) *Host {
	return &Host{
		world: world,
		query: donburi.NewQuery(filter.Contains(Collider, Transform)),
	}
}

// Spawn creates an entity carrying a copy of c anchored at pos.
func Spawn(world donburi.World, c *collision.Collider, pos physics.Vec2) models.EntityID {
	e := world.Create(Collider, Transform)
	entry := world.Entry(e)
	Collider.SetValue(entry, *c.Clone())
	Transform.SetValue(entry, physics.Transform2D{Pos: pos})
	return models.EntityID(e)
}

// SetPosition moves an entity's anchor. It reports false for unknown entities.
func SetPosition(world donburi.World, id models.EntityID, pos physics.Vec2) bool {
	e, ok := lookup(world, id)
	if !ok {
		return false
	}
	entry := world.Entry(e)
	if !entry.HasComponent(Transform) {
		return false
	}
	Transform.Get(entry).Pos = pos
	return true
}

// Each visits entities in query order. donburi keeps that order stable while
// no entity is created or removed.
func (h *Host) Each(fn func(id models.EntityID, c *collision.Collider) bool) {
	stopped := false
	h.query.Each(h.world, func(entry *donburi.Entry) {
		if stopped {
			return
		}
		if !fn(models.EntityID(entry.Entity()), Collider.Get(entry)) {
			stopped = true
		}
	})
}

func (h *Host) Position(id models.EntityID) (physics.Vec2, bool) {
	e, ok := lookup(h.world, id)
	if !ok {
		return physics.Vec2{}, false
	}
	entry := h.world.Entry(e)
	if !entry.HasComponent(Transform) {
		return physics.Vec2{}, false
	}
	return Transform.Get(entry).Pos, true
}

// lookup maps id onto a live donburi entity. The zero id is donburi's null
// entity and never resolves.
func lookup(world donburi.World, id models.EntityID) (donburi.Entity, bool) {
	if !id.IsValid() {
		return 0, false
	}
	e := donburi.Entity(id)
	return e, world.Valid(e)
}
