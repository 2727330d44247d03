package collision

import (
	"fmt"

	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

// PositionTracker moves colliders along with their owners' anchors. Each
// frame it translates every collider by the difference between the owner's
// current anchor and the anchor recorded on the previous frame.
type PositionTracker struct {
	mode        TrackingMode
	initialized bool
	indexed     []physics.Vec2
	keyed       map[models.EntityID]physics.Vec2
}

func NewPositionTracker(mode TrackingMode) *PositionTracker {
	return &PositionTracker{mode: mode}
}

func (t *PositionTracker) Mode() TrackingMode { return t.mode }

func (t *PositionTracker) IsTracking() bool { return t.initialized }

// Len returns the number of remembered anchors.
func (t *PositionTracker) Len() int {
	if t.mode == TrackKeyed {
		return len(t.keyed)
	}
	return len(t.indexed)
}

// Initialize records the current anchor of every tracked collider.
func (t *PositionTracker) Initialize(host Host) error {
	if t.initialized {
		return ErrTrackerAlreadyInitialized
	}
	entries := collect(host)
	anchors, err := positions(host, entries)
	if err != nil {
		return err
	}

	switch t.mode {
	case TrackKeyed:
		t.keyed = make(map[models.EntityID]physics.Vec2, len(entries))
		for i, e := range entries {
			t.keyed[e.id] = anchors[i]
		}
	default:
		t.indexed = anchors
	}
	t.initialized = true
	return nil
}

// Update translates every tracked collider by its owner's movement since the
// previous frame and records the new anchors. No collider is moved when an
// error is returned.
func (t *PositionTracker) Update(host Host) error {
	if !t.initialized {
		return ErrTrackerNotInitialized
	}
	entries := collect(host)
	anchors, err := positions(host, entries)
	if err != nil {
		return err
	}

	if t.mode == TrackKeyed {
		t.updateKeyed(entries, anchors)
		return nil
	}

	if len(entries) != len(t.indexed) {
		return fmt.Errorf("%w: initialized with %d colliders, host now has %d",
			ErrTrackerStateMismatch, len(t.indexed), len(entries))
	}
	for i, e := range entries {
		e.collider.Translate(anchors[i], t.indexed[i])
		t.indexed[i] = anchors[i]
	}
	return nil
}

func (t *PositionTracker) updateKeyed(entries []tracked, anchors []physics.Vec2) {
	seen := make(map[models.EntityID]struct{}, len(entries))
	for i, e := range entries {
		seen[e.id] = struct{}{}
		if prev, ok := t.keyed[e.id]; ok {
			e.collider.Translate(anchors[i], prev)
		}
		t.keyed[e.id] = anchors[i]
	}
	for id := range t.keyed {
		if _, ok := seen[id]; !ok {
			delete(t.keyed, id)
		}
	}
}

func positions(host Host, entries []tracked) ([]physics.Vec2, error) {
	out := make([]physics.Vec2, len(entries))
	for i, e := range entries {
		p, ok := host.Position(e.id)
		if !ok {
			return nil, fmt.Errorf("%w: entity %s", ErrMissingPosition, e.id)
		}
		out[i] = p
	}
	return out, nil
}
