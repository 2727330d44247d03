package world

import (
	"context"

	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/systems"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

var _ systems.System = (*Mover)(nil)

// Mover advances entity anchors by a constant per-frame velocity. It runs in
// the pre-update phase, ahead of the collision plugin.
type Mover struct {
	world      *World
	velocities map[models.EntityID]physics.Vec2
	order      []models.EntityID
	enabled    bool
}

func NewMover(w *World) *Mover {
	return &Mover{world: w, velocities: make(map[models.EntityID]physics.Vec2), enabled: true}
}

// SetVelocity sets the per-frame displacement of id.
func (m *Mover) SetVelocity(id models.EntityID, v physics.Vec2) {
	if _, ok := m.velocities[id]; !ok {
		m.order = append(m.order, id)
	}
	m.velocities[id] = v
}

func (m *Mover) Name() string                           { return "mover" }
func (m *Mover) Priority() systems.Priority             { return systems.PriorityNormal }
func (m *Mover) ExecutionPhase() systems.ExecutionPhase { return systems.PhasePreUpdate }
func (m *Mover) IsEnabled() bool                        { return m.enabled }
func (m *Mover) SetEnabled(v bool)                      { m.enabled = v }

func (m *Mover) Initialize(context.Context) error { return nil }

func (m *Mover) Update(float64) error {
	for _, id := range m.order {
		if err := m.world.Move(id, m.velocities[id]); err != nil {
			return err
		}
	}
	return nil
}
