package collision

import (
	"fmt"
	"strings"
)

// TrackingMode selects how the position tracker remembers previous anchors.
type TrackingMode uint8

const (
	// TrackIndexed stores one slot per collider in host iteration order and
	// fails if the tracked set changes size.
	TrackIndexed TrackingMode = iota
	// TrackKeyed stores previous anchors by entity, so entities may come and go.
	TrackKeyed
)

func (m TrackingMode) String() string {
	switch m {
	case TrackIndexed:
		return "indexed"
	case TrackKeyed:
		return "keyed"
	default:
		return fmt.Sprintf("tracking(%d)", uint8(m))
	}
}

// ParseTrackingMode accepts "indexed" or "keyed"; empty selects indexed.
func ParseTrackingMode(s string) (TrackingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "indexed":
		return TrackIndexed, nil
	case "keyed":
		return TrackKeyed, nil
	default:
		return TrackIndexed, fmt.Errorf("%w: tracking %q", ErrUnknownMode, s)
	}
}

// ReportingMode selects how often a colliding pair is reported per frame.
type ReportingMode uint8

const (
	// ReportBothOrders visits every ordered pair, so a collision between A and
	// B is reported twice: once addressed to A and once to B.
	ReportBothOrders ReportingMode = iota
	// ReportOncePerPair visits each unordered pair once and addresses the
	// event to the entity that comes first in host iteration order.
	ReportOncePerPair
)

func (m ReportingMode) String() string {
	switch m {
	case ReportBothOrders:
		return "both"
	case ReportOncePerPair:
		return "once"
	default:
		return fmt.Sprintf("reporting(%d)", uint8(m))
	}
}

// ParseReportingMode accepts "both" or "once"; empty selects both.
func ParseReportingMode(s string) (ReportingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return ReportBothOrders, nil
	case "once":
		return ReportOncePerPair, nil
	default:
		return ReportBothOrders, fmt.Errorf("%w: reporting %q", ErrUnknownMode, s)
	}
}
