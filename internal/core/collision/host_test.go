package collision

import (
	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

// sliceHost is a minimal Host backed by parallel slices.
type sliceHost struct {
	ids       []models.EntityID
	colliders []*Collider
	positions map[models.EntityID]physics.Vec2
}

func newSliceHost() *sliceHost {
	return &sliceHost{positions: make(map[models.EntityID]physics.Vec2)}
}

func (h *sliceHost) add(id models.EntityID, c *Collider, pos physics.Vec2) {
	h.ids = append(h.ids, id)
	h.colliders = append(h.colliders, c)
	h.positions[id] = pos
}

func (h *sliceHost) remove(id models.EntityID) {
	for i, o := range h.ids {
		if o == id {
			h.ids = append(h.ids[:i], h.ids[i+1:]...)
			h.colliders = append(h.colliders[:i], h.colliders[i+1:]...)
			delete(h.positions, id)
			return
		}
	}
}

func (h *sliceHost) Each(fn func(models.EntityID, *Collider) bool) {
	for i, id := range h.ids {
		if !fn(id, h.colliders[i]) {
			return
		}
	}
}

func (h *sliceHost) Position(id models.EntityID) (physics.Vec2, bool) {
	p, ok := h.positions[id]
	return p, ok
}
