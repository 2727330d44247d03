package bus

import (
	"errors"
	"testing"

	"github.com/zeusync/collider/internal/core/models"
)

func targetedEvent(typ, src string, target models.EntityID, data any) Event {
	e := NewEvent(typ, src, data).(simpleEvent)
	e.target, e.hasTarget = target, true
	return e
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	calls := 0
	_, err := b.Subscribe("test.event", func(e Event) error {
		calls++
		if e.Data() != 123 {
			t.Fatalf("unexpected payload: %v", e.Data())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if err = b.Publish(NewEvent("test.event", "tester", 123)); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if calls != 1 {
		t.Fatalf("handler called %d times", calls)
	}
}

func TestObserveOnlyReceivesOwnTarget(t *testing.T) {
	b := New()
	var got1, got2, global int
	_, _ = b.Observe(models.EntityID(1), "hit", func(Event) error { got1++; return nil })
	_, _ = b.Observe(models.EntityID(2), "hit", func(Event) error { got2++; return nil })
	_, _ = b.Subscribe("hit", func(Event) error { global++; return nil })

	_ = b.Publish(targetedEvent("hit", "src", models.EntityID(1), nil))
	_ = b.Publish(targetedEvent("hit", "src", models.EntityID(1), nil))
	_ = b.Publish(NewEvent("hit", "src", nil))

	if got1 != 2 || got2 != 0 || global != 3 {
		t.Fatalf("targeting failed: e1=%d e2=%d global=%d", got1, got2, global)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	calls := 0
	sub, _ := b.Observe(models.EntityID(9), "x", func(Event) error { calls++; return nil })
	_ = b.Publish(targetedEvent("x", "src", 9, nil))
	if err := b.Unsubscribe(sub); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}
	if sub.IsActive() {
		t.Fatal("subscription still active")
	}
	_ = b.Publish(targetedEvent("x", "src", 9, nil))
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if err := b.Unsubscribe(nil); err != nil {
		t.Fatalf("nil unsubscribe: %v", err)
	}
}

func TestForgetDropsObservers(t *testing.T) {
	b := New()
	sub, _ := b.Observe(models.EntityID(4), "x", func(Event) error { return nil })
	b.Forget(4)
	if sub.IsActive() {
		t.Fatal("observer survived Forget")
	}
	if m := b.GetMetrics(); m.ObservedEntities != 0 {
		t.Fatalf("observed entities not cleared: %+v", m)
	}
}

func TestPublishBatchJoinsErrors(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	_, _ = b.Subscribe("a", func(Event) error { return errA })
	_, _ = b.Subscribe("b", func(Event) error { return errB })
	err := b.PublishBatch(NewEvent("a", "s", nil), NewEvent("b", "s", nil), NewEvent("c", "s", nil))
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Fatalf("expected joined error, got %v", err)
	}
	m := b.GetMetrics()
	if m.Published != 3 || m.Errors != 2 || m.Undelivered != 1 || m.DeliveredHandlers != 2 {
		t.Fatalf("unexpected metrics: %+v", m)
	}
}

func TestNilHandlerRejected(t *testing.T) {
	b := New()
	if _, err := b.Subscribe("x", nil); !errors.Is(err, ErrNilHandler) {
		t.Fatalf("expected ErrNilHandler, got %v", err)
	}
	if _, err := b.Observe(1, "x", nil); !errors.Is(err, ErrNilHandler) {
		t.Fatalf("expected ErrNilHandler, got %v", err)
	}
}
