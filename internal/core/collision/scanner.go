package collision

import (
	"github.com/zeusync/collider/internal/core/events/bus"
)

// PairwiseScanner tests every pair of tracked colliders once per frame.
//
// A pair is skipped when both point sequences are equal, which filters a
// collider against itself but also two distinct entities that happen to hold
// identical sequences.
type PairwiseScanner struct {
	reporting ReportingMode
}

func NewPairwiseScanner(reporting ReportingMode) *PairwiseScanner {
	return &PairwiseScanner{reporting: reporting}
}

func (s *PairwiseScanner) Reporting() ReportingMode { return s.reporting }

type scanEntry struct {
	tracked
	fingerprint uint64
}

// Scan returns one event per colliding pair visit, in host iteration order.
func (s *PairwiseScanner) Scan(host Host, frame uint64) []CollisionEvent {
	entries := collect(host)
	scanned := make([]scanEntry, len(entries))
	for i, e := range entries {
		scanned[i] = scanEntry{tracked: e, fingerprint: e.collider.Fingerprint()}
	}

	var events []CollisionEvent
	for i := range scanned {
		start := 0
		if s.reporting == ReportOncePerPair {
			start = i + 1
		}
		for j := start; j < len(scanned); j++ {
			a, b := scanned[i], scanned[j]
			if a.fingerprint == b.fingerprint && a.collider.Equal(b.collider) {
				continue
			}
			if Intersects(a.collider, b.collider) {
				events = append(events, newCollisionEvent(a.tracked, b.tracked, frame))
			}
		}
	}
	return events
}

// Run scans the host and publishes every collision on b. It returns the
// number of events published and the joined handler errors.
func (s *PairwiseScanner) Run(host Host, b bus.EventBus, frame uint64) (int, error) {
	events := s.Scan(host, frame)
	if len(events) == 0 {
		return 0, nil
	}
	out := make([]bus.Event, len(events))
	for i, e := range events {
		out[i] = e
	}
	return len(events), b.PublishBatch(out...)
}
