package bus

import (
	"time"

	"github.com/zeusync/collider/internal/core/models"
)

// EventBus is the in-process notification boundary between engine systems
// and the host.
//
// Key characteristics:
// - Type-based fan-out: handlers subscribe by Event.Type() string.
// - Targeted observers: a handler can observe one entity and only receives
//   events addressed to it (Event.Target).
// - Synchronous delivery: Publish calls handlers in the caller goroutine.
// - Error aggregation: handler errors are joined and returned from Publish/PublishBatch.
//
// All methods are safe for concurrent use.
type EventBus interface {
	// Publish delivers the event synchronously to every subscriber of
	// event.Type() and, when the event has a target, to that entity's observers.
	Publish(event Event) error
	// PublishBatch publishes events in order and aggregates errors across them.
	PublishBatch(events ...Event) error

	// Subscribe registers a handler for every event of eventType.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Observe registers a handler for events of eventType addressed to target.
	Observe(target models.EntityID, eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. It is safe to call with nil.
	Unsubscribe(Subscription) error
	// Forget drops every observer attached to target, e.g. when the host
	// destroys the entity.
	Forget(target models.EntityID)

	// GetMetrics returns a snapshot of delivery counters.
	GetMetrics() Metrics
}

// Event is an immutable message transported by the EventBus.
type Event interface {
	ID() string
	Type() string
	Source() string
	Timestamp() time.Time
	// Target returns the entity the event is addressed to, if any.
	Target() (models.EntityID, bool)
	Data() any
}

type (
	// EventHandler is invoked per delivered event. Returned errors are joined
	// and returned from Publish.
	EventHandler func(event Event) error
)

// Subscription represents a registered handler.
type Subscription interface {
	ID() string
	EventType() string
	// Target is the observed entity, or false for a type-wide subscription.
	Target() (models.EntityID, bool)
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}

// Metrics holds delivery counters.
type Metrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Undelivered       uint64
	Errors            uint64
	SubscribersActive uint64
	ObservedEntities  uint64
}
