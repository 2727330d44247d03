package systems

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSystem struct {
	name     string
	phase    ExecutionPhase
	priority Priority
	enabled  bool
	calls    *[]string
	fail     error
}

func newRecording(name string, phase ExecutionPhase, priority Priority, calls *[]string) *recordingSystem {
	return &recordingSystem{name: name, phase: phase, priority: priority, enabled: true, calls: calls}
}

func (s *recordingSystem) Name() string                   { return s.name }
func (s *recordingSystem) Priority() Priority             { return s.priority }
func (s *recordingSystem) ExecutionPhase() ExecutionPhase { return s.phase }
func (s *recordingSystem) IsEnabled() bool                { return s.enabled }
func (s *recordingSystem) SetEnabled(v bool)              { s.enabled = v }

func (s *recordingSystem) Initialize(context.Context) error {
	*s.calls = append(*s.calls, "init:"+s.name)
	return nil
}

func (s *recordingSystem) Update(float64) error {
	*s.calls = append(*s.calls, s.name)
	return s.fail
}

func TestRunnerOrdersByPhaseThenPriority(t *testing.T) {
	var calls []string
	r := NewRunner(nil)
	require.NoError(t, r.Register(newRecording("scan", PhaseUpdate, PriorityNormal, &calls)))
	require.NoError(t, r.Register(newRecording("move", PhasePreUpdate, PriorityLow, &calls)))
	require.NoError(t, r.Register(newRecording("first", PhaseUpdate, PriorityHigh, &calls)))

	assert.Equal(t, []string{"move", "first", "scan"}, r.ExecutionOrder())

	require.NoError(t, r.InitializeAll(context.Background()))
	require.NoError(t, r.Step(0.1))
	assert.Equal(t, []string{"init:move", "init:first", "init:scan", "move", "first", "scan"}, calls)
	assert.Equal(t, uint64(1), r.Frame())

	m, ok := r.Metrics("scan")
	require.True(t, ok)
	assert.Equal(t, uint64(1), m.ExecutionCount)
}

func TestRunnerRejectsDuplicatesAndLateRegistration(t *testing.T) {
	var calls []string
	r := NewRunner(nil)
	require.NoError(t, r.Register(newRecording("a", PhaseUpdate, PriorityNormal, &calls)))
	assert.ErrorIs(t, r.Register(newRecording("a", PhaseUpdate, PriorityNormal, &calls)), ErrSystemAlreadyRegistered)
	assert.ErrorIs(t, r.Register(nil), ErrNilSystem)

	assert.ErrorIs(t, r.Step(0.1), ErrRunnerNotInitialized)
	require.NoError(t, r.InitializeAll(context.Background()))
	assert.ErrorIs(t, r.Register(newRecording("b", PhaseUpdate, PriorityNormal, &calls)), ErrRunnerInitialized)
}

func TestRunnerStopsOnFailure(t *testing.T) {
	var calls []string
	boom := errors.New("boom")
	r := NewRunner(nil)
	failing := newRecording("failing", PhasePreUpdate, PriorityNormal, &calls)
	failing.fail = boom
	require.NoError(t, r.Register(failing))
	require.NoError(t, r.Register(newRecording("after", PhaseUpdate, PriorityNormal, &calls)))
	require.NoError(t, r.InitializeAll(context.Background()))

	err := r.Run(context.Background(), 5, 0.1)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, StateFailed, r.State())
	assert.NotContains(t, calls, "after")
	assert.ErrorIs(t, r.Step(0.1), ErrRunnerFailed)

	m, _ := r.Metrics("failing")
	assert.Equal(t, uint64(1), m.ErrorCount)
}

func TestRunnerSkipsDisabledSystems(t *testing.T) {
	var calls []string
	r := NewRunner(nil)
	s := newRecording("s", PhaseUpdate, PriorityNormal, &calls)
	s.SetEnabled(false)
	require.NoError(t, r.Register(s))
	require.NoError(t, r.InitializeAll(context.Background()))
	require.NoError(t, r.Run(context.Background(), 3, 0.1))
	assert.Equal(t, []string{"init:s"}, calls)
}
