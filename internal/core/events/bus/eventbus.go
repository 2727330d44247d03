package bus

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zeusync/collider/internal/core/models"
)

var ErrNilHandler = errors.New("event handler is nil")

// simpleEvent is a basic implementation of Event for callers without their
// own event types.
type simpleEvent struct {
	id        string
	typeStr   string
	source    string
	ts        time.Time
	target    models.EntityID
	hasTarget bool
	data      any
}

func (e simpleEvent) ID() string           { return e.id }
func (e simpleEvent) Type() string         { return e.typeStr }
func (e simpleEvent) Source() string       { return e.source }
func (e simpleEvent) Timestamp() time.Time { return e.ts }
func (e simpleEvent) Data() any            { return e.data }
func (e simpleEvent) Target() (models.EntityID, bool) {
	return e.target, e.hasTarget
}

// NewEvent creates an untargeted event.
func NewEvent(typ, src string, data any) Event {
	return simpleEvent{id: uuid.NewString(), typeStr: typ, source: src, ts: time.Now(), data: data}
}

type subscription struct {
	id        string
	eventType string
	target    models.EntityID
	hasTarget bool
	handler   EventHandler
	mu        sync.Mutex
	active    bool
	cancel    func()
}

func (s *subscription) ID() string        { return s.id }
func (s *subscription) EventType() string { return s.eventType }
func (s *subscription) Target() (models.EntityID, bool) {
	return s.target, s.hasTarget
}

func (s *subscription) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *subscription) Cancel() error {
	s.mu.Lock()
	wasActive := s.active
	s.active = false
	s.mu.Unlock()
	if wasActive && s.cancel != nil {
		s.cancel()
	}
	return nil
}

type handlerSet map[string]*subscription

// inMemoryBus is a thread-safe EventBus.
type inMemoryBus struct {
	mu sync.RWMutex
	// global: eventType -> subID -> subscription
	global map[string]handlerSet
	// targeted: entity -> eventType -> subID -> subscription
	targeted map[models.EntityID]map[string]handlerSet
	metrics  Metrics
}

// New creates a new EventBus instance.
func New() EventBus {
	return &inMemoryBus{
		global:   make(map[string]handlerSet),
		targeted: make(map[models.EntityID]map[string]handlerSet),
	}
}

func (b *inMemoryBus) Publish(event Event) error {
	return b.deliver(event)
}

func (b *inMemoryBus) PublishBatch(events ...Event) error {
	var all error
	for _, e := range events {
		if err := b.deliver(e); err != nil {
			all = errors.Join(all, err)
		}
	}
	return all
}

func (b *inMemoryBus) Subscribe(eventType string, handler EventHandler) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	set := b.global[eventType]
	if set == nil {
		set = make(handlerSet)
		b.global[eventType] = set
	}
	s := b.newSubscriptionLocked(eventType, handler)
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if set, ok := b.global[eventType]; ok {
			delete(set, s.id)
			if len(set) == 0 {
				delete(b.global, eventType)
			}
		}
	}
	set[s.id] = s
	return s, nil
}

func (b *inMemoryBus) Observe(target models.EntityID, eventType string, handler EventHandler) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	byType := b.targeted[target]
	if byType == nil {
		byType = make(map[string]handlerSet)
		b.targeted[target] = byType
	}
	set := byType[eventType]
	if set == nil {
		set = make(handlerSet)
		byType[eventType] = set
	}
	s := b.newSubscriptionLocked(eventType, handler)
	s.target, s.hasTarget = target, true
	s.cancel = func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if byType, ok := b.targeted[target]; ok {
			delete(byType[eventType], s.id)
			if len(byType[eventType]) == 0 {
				delete(byType, eventType)
			}
			if len(byType) == 0 {
				delete(b.targeted, target)
			}
		}
	}
	set[s.id] = s
	return s, nil
}

func (b *inMemoryBus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return nil
	}
	return sub.Cancel()
}

func (b *inMemoryBus) Forget(target models.EntityID) {
	b.mu.Lock()
	byType := b.targeted[target]
	delete(b.targeted, target)
	b.mu.Unlock()
	for _, set := range byType {
		for _, s := range set {
			s.mu.Lock()
			s.active = false
			s.mu.Unlock()
		}
	}
}

func (b *inMemoryBus) GetMetrics() Metrics {
	b.mu.RLock()
	defer b.mu.RUnlock()
	m := b.metrics
	for _, set := range b.global {
		m.SubscribersActive += uint64(len(set))
	}
	for _, byType := range b.targeted {
		for _, set := range byType {
			m.SubscribersActive += uint64(len(set))
		}
	}
	m.ObservedEntities = uint64(len(b.targeted))
	return m
}

func (b *inMemoryBus) newSubscriptionLocked(eventType string, handler EventHandler) *subscription {
	return &subscription{id: uuid.NewString(), eventType: eventType, handler: handler, active: true}
}

func (b *inMemoryBus) deliver(event Event) error {
	etype := event.Type()
	target, hasTarget := event.Target()

	b.mu.RLock()
	subs := make([]*subscription, 0, len(b.global[etype]))
	for _, s := range b.global[etype] {
		subs = append(subs, s)
	}
	if hasTarget {
		for _, s := range b.targeted[target][etype] {
			subs = append(subs, s)
		}
	}
	b.mu.RUnlock()

	var (
		all       error
		delivered uint64
	)
	for _, s := range subs {
		if !s.IsActive() {
			continue
		}
		delivered++
		if err := s.handler(event); err != nil {
			all = errors.Join(all, err)
		}
	}

	b.mu.Lock()
	b.metrics.Published++
	b.metrics.DeliveredHandlers += delivered
	if delivered == 0 {
		b.metrics.Undelivered++
	}
	if all != nil {
		b.metrics.Errors++
	}
	b.mu.Unlock()
	return all
}
