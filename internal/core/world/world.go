// Package world is a small in-memory entity store that lends colliders and
// anchor positions to the collision engine. Iteration follows spawn order.
package world

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zeusync/collider/internal/core/collision"
	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

var ErrEntityNotFound = errors.New("entity not found")

var _ collision.Host = (*World)(nil)

type entity struct {
	name      string
	collider  *collision.Collider
	transform physics.Transform2D
}

type World struct {
	mu       sync.RWMutex
	next     models.EntityID
	order    []models.EntityID
	entities map[models.EntityID]*entity
}

func New() *World {
	return &World{entities: make(map[models.EntityID]*entity)}
}

// Spawn adds an entity. A nil collider spawns an entity that has a position
// but is not tracked by the collision engine.
func (w *World) Spawn(name string, c *collision.Collider, pos physics.Vec2) models.EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.next++
	id := w.next
	w.entities[id] = &entity{name: name, collider: c, transform: physics.Transform2D{Pos: pos}}
	w.order = append(w.order, id)
	return id
}

// Despawn removes an entity, keeping the relative order of the rest.
func (w *World) Despawn(id models.EntityID) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.entities[id]; !ok {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	delete(w.entities, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return nil
}

func (w *World) SetPosition(id models.EntityID, pos physics.Vec2) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.entities[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	e.transform.Pos = pos
	return nil
}

// Move offsets an entity's anchor.
func (w *World) Move(id models.EntityID, delta physics.Vec2) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	e, ok := w.entities[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	e.transform.Pos = e.transform.Pos.Add(delta)
	return nil
}

func (w *World) Collider(id models.EntityID) (*collision.Collider, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[id]
	if !ok || e.collider == nil {
		return nil, false
	}
	return e.collider, true
}

func (w *World) Name(id models.EntityID) string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if e, ok := w.entities[id]; ok {
		return e.name
	}
	return ""
}

func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.order)
}

// Each visits entities that carry a collider, in spawn order. The visit runs
// over a snapshot so fn may call back into the world.
func (w *World) Each(fn func(id models.EntityID, c *collision.Collider) bool) {
	w.mu.RLock()
	ids := make([]models.EntityID, 0, len(w.order))
	colliders := make([]*collision.Collider, 0, len(w.order))
	for _, id := range w.order {
		if e := w.entities[id]; e.collider != nil {
			ids = append(ids, id)
			colliders = append(colliders, e.collider)
		}
	}
	w.mu.RUnlock()

	for i, id := range ids {
		if !fn(id, colliders[i]) {
			return
		}
	}
}

func (w *World) Position(id models.EntityID) (physics.Vec2, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	e, ok := w.entities[id]
	if !ok {
		return physics.Vec2{}, false
	}
	return e.transform.Pos, true
}
