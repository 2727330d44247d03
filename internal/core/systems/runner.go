package systems

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/zeusync/collider/internal/core/observability/log"
)

// Runner executes registered systems frame by frame on the caller's
// goroutine. Inside a frame systems run by phase, then by descending
// priority, then in registration order. A system error aborts the frame and
// leaves the runner in StateFailed; later Step calls return ErrRunnerFailed.
type Runner struct {
	logger  log.Log
	systems []System
	order   []System
	metrics map[string]*Metrics
	state   StateIdentity
	frame   uint64
}

func NewRunner(logger log.Log) *Runner {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Runner{
		logger:  logger.Named("runner"),
		metrics: make(map[string]*Metrics),
	}
}

// Register adds a system. Systems must be registered before InitializeAll.
func (r *Runner) Register(s System) error {
	if s == nil {
		return ErrNilSystem
	}
	if r.state != StateUninitialized {
		return ErrRunnerInitialized
	}
	if _, exists := r.metrics[s.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrSystemAlreadyRegistered, s.Name())
	}
	r.systems = append(r.systems, s)
	r.metrics[s.Name()] = &Metrics{}
	r.order = nil
	return nil
}

// InitializeAll initializes every system in execution order.
func (r *Runner) InitializeAll(ctx context.Context) error {
	if r.state != StateUninitialized {
		return ErrRunnerInitialized
	}
	for _, s := range r.executionOrder() {
		if err := s.Initialize(ctx); err != nil {
			r.state = StateFailed
			r.logger.Error("system initialization failed", log.String("system", s.Name()), log.Error(err))
			return fmt.Errorf("initialize %s: %w", s.Name(), err)
		}
	}
	r.state = StateRunning
	r.logger.Info("systems initialized", log.Int("count", len(r.systems)))
	return nil
}

// Step runs one frame.
func (r *Runner) Step(deltaTime float64) error {
	switch r.state {
	case StateUninitialized:
		return ErrRunnerNotInitialized
	case StateFailed:
		return ErrRunnerFailed
	}
	r.frame++
	for _, s := range r.executionOrder() {
		if !s.IsEnabled() {
			continue
		}
		start := time.Now()
		err := s.Update(deltaTime)
		r.metrics[s.Name()].record(time.Since(start), err)
		if err != nil {
			r.state = StateFailed
			r.logger.Error("system update failed",
				log.String("system", s.Name()),
				log.Uint64("frame", r.frame),
				log.Error(err),
			)
			return fmt.Errorf("frame %d: %s: %w", r.frame, s.Name(), err)
		}
	}
	return nil
}

// Run steps frames until the count is reached, a system fails or ctx is done.
func (r *Runner) Run(ctx context.Context, frames int, deltaTime float64) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.Step(deltaTime); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) Frame() uint64 { return r.frame }

func (r *Runner) State() StateIdentity { return r.state }

// Metrics returns a snapshot of a system's metrics.
func (r *Runner) Metrics(name string) (Metrics, bool) {
	m, ok := r.metrics[name]
	if !ok {
		return Metrics{}, false
	}
	return *m, true
}

// ExecutionOrder lists system names in the order they run.
func (r *Runner) ExecutionOrder() []string {
	order := r.executionOrder()
	names := make([]string, len(order))
	for i, s := range order {
		names[i] = s.Name()
	}
	return names
}

func (r *Runner) executionOrder() []System {
	if r.order != nil {
		return r.order
	}
	r.order = make([]System, len(r.systems))
	copy(r.order, r.systems)
	sort.SliceStable(r.order, func(a, b int) bool {
		pa, pb := r.order[a].ExecutionPhase(), r.order[b].ExecutionPhase()
		if pa != pb {
			return pa < pb
		}
		return r.order[a].Priority() > r.order[b].Priority()
	})
	return r.order
}
