package collision

import (
	"time"

	"github.com/google/uuid"
	"github.com/zeusync/collider/internal/core/events/bus"
	"github.com/zeusync/collider/internal/core/models"
)

const (
	// EventTypeCollision is the bus event type of CollisionEvent.
	EventTypeCollision = "collision"
	// EventSource identifies the scanner as publisher.
	EventSource = "collision.scanner"
)

var _ bus.Event = CollisionEvent{}

// CollisionEvent reports that two colliders share a point. It is addressed
// to Entity; Collider1 belongs to Entity and Collider2 to Other. Both are
// copies taken at scan time.
type CollisionEvent struct {
	EventID   string
	Entity    models.EntityID
	Other     models.EntityID
	Collider1 *Collider
	Collider2 *Collider
	Frame     uint64
	At        time.Time
}

func newCollisionEvent(a, b tracked, frame uint64) CollisionEvent {
	return CollisionEvent{
		EventID:   uuid.NewString(),
		Entity:    a.id,
		Other:     b.id,
		Collider1: a.collider.Clone(),
		Collider2: b.collider.Clone(),
		Frame:     frame,
		At:        time.Now(),
	}
}

func (e CollisionEvent) ID() string           { return e.EventID }
func (e CollisionEvent) Type() string         { return EventTypeCollision }
func (e CollisionEvent) Source() string       { return EventSource }
func (e CollisionEvent) Timestamp() time.Time { return e.At }
func (e CollisionEvent) Data() any            { return e }
func (e CollisionEvent) Target() (models.EntityID, bool) {
	return e.Entity, true
}

// AsCollision extracts a CollisionEvent from a bus event.
func AsCollision(ev bus.Event) (CollisionEvent, bool) {
	ce, ok := ev.Data().(CollisionEvent)
	return ce, ok
}
