package systems

import (
	"context"
	"time"
)

// System is a unit of per-frame game logic driven by a Runner.
type System interface {
	// Identity

	Name() string

	// Lifecycle

	// Initialize runs once, after the world has been populated and before
	// the first frame.
	Initialize(ctx context.Context) error

	// Execution

	Update(deltaTime float64) error

	// Configuration

	Priority() Priority
	ExecutionPhase() ExecutionPhase

	// State management

	IsEnabled() bool
	SetEnabled(bool)
}

// Priority orders systems inside a phase; higher runs first.
type Priority uint16

const (
	PriorityLowest  Priority = 200
	PriorityLow     Priority = 500
	PriorityNormal  Priority = 600
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 1300
)

// ExecutionPhase defines when in a frame a system runs.
type ExecutionPhase uint8

const (
	PhasePreUpdate ExecutionPhase = iota
	PhaseUpdate
	PhasePostUpdate
)

func (p ExecutionPhase) String() string {
	switch p {
	case PhasePreUpdate:
		return "pre_update"
	case PhaseUpdate:
		return "update"
	case PhasePostUpdate:
		return "post_update"
	default:
		return "unknown"
	}
}

// StateIdentity is the lifecycle state of the Runner.
type StateIdentity uint8

const (
	StateUninitialized StateIdentity = iota
	StateRunning
	StateFailed
)

// Metrics provides runtime metrics for a system.
type Metrics struct {
	ExecutionCount       uint64
	TotalExecutionTime   time.Duration
	AverageExecutionTime time.Duration
	MaxExecutionTime     time.Duration
	ErrorCount           uint64
	LastError            error
	LastExecutionTime    time.Time
}

func (m *Metrics) record(took time.Duration, err error) {
	m.ExecutionCount++
	m.TotalExecutionTime += took
	m.AverageExecutionTime = m.TotalExecutionTime / time.Duration(m.ExecutionCount)
	if took > m.MaxExecutionTime {
		m.MaxExecutionTime = took
	}
	m.LastExecutionTime = time.Now()
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}
