package collision

import (
	"context"
	"fmt"

	"github.com/zeusync/collider/internal/core/events/bus"
	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/observability/log"
	"github.com/zeusync/collider/internal/core/systems"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

// PluginName is the system name the plugin registers under.
const PluginName = "collision"

var _ systems.System = (*Plugin)(nil)

// Config selects the plugin features. At least one of AutoMove and Events
// must be set.
type Config struct {
	// AutoMove translates colliders along with their owners' anchors.
	AutoMove bool
	// Events publishes a CollisionEvent for every colliding pair.
	Events    bool
	Tracking  TrackingMode
	Reporting ReportingMode
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if !c.AutoMove && !c.Events {
		return ErrPluginNoFeatures
	}
	if c.Tracking > TrackKeyed {
		return fmt.Errorf("%w: %s", ErrUnknownMode, c.Tracking)
	}
	if c.Reporting > ReportOncePerPair {
		return fmt.Errorf("%w: %s", ErrUnknownMode, c.Reporting)
	}
	return nil
}

// Plugin is the per-frame collision system: it moves colliders with their
// owners, then scans all pairs and publishes collisions.
type Plugin struct {
	cfg      Config
	host     Host
	bus      bus.EventBus
	logger   log.Log
	priority systems.Priority
	tracker  *PositionTracker
	scanner  *PairwiseScanner
	enabled  bool
	frame    uint64
}

type PluginOption func(*Plugin)

// WithEventBus sets the bus collision events are published on.
func WithEventBus(b bus.EventBus) PluginOption {
	return func(p *Plugin) { p.bus = b }
}

func WithLogger(l log.Log) PluginOption {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l
		}
	}
}

func WithPriority(priority systems.Priority) PluginOption {
	return func(p *Plugin) { p.priority = priority }
}

// NewPlugin validates cfg and builds the plugin over host.
func NewPlugin(cfg Config, host Host, opts ...PluginOption) (*Plugin, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if host == nil {
		return nil, ErrPluginNoHost
	}
	p := &Plugin{
		cfg:      cfg,
		host:     host,
		logger:   log.Provide(),
		priority: systems.PriorityNormal,
		enabled:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if cfg.Events && p.bus == nil {
		return nil, ErrPluginNoBus
	}
	if cfg.AutoMove {
		p.tracker = NewPositionTracker(cfg.Tracking)
	}
	if cfg.Events {
		p.scanner = NewPairwiseScanner(cfg.Reporting)
	}
	p.logger = p.logger.Named(PluginName).With(
		log.Bool("auto_move", cfg.AutoMove),
		log.Bool("events", cfg.Events),
	)
	if cfg.Events && p.debug() {
		if _, err := p.bus.Subscribe(EventTypeCollision, p.logCollision); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *Plugin) Name() string                           { return PluginName }
func (p *Plugin) Priority() systems.Priority             { return p.priority }
func (p *Plugin) ExecutionPhase() systems.ExecutionPhase { return systems.PhaseUpdate }
func (p *Plugin) IsEnabled() bool                        { return p.enabled }
func (p *Plugin) SetEnabled(enabled bool)                { p.enabled = enabled }
func (p *Plugin) Config() Config                         { return p.cfg }

// Tracker is nil unless AutoMove is enabled.
func (p *Plugin) Tracker() *PositionTracker { return p.tracker }

// Initialize records starting anchors when AutoMove is enabled. It must run
// after the host has spawned every tracked entity.
func (p *Plugin) Initialize(_ context.Context) error {
	if p.debug() {
		p.host.Each(func(id models.EntityID, c *Collider) bool {
			lo, hi, _ := c.Bounds()
			p.logger.Debug("collider registered",
				log.String("entity", id.String()),
				log.Int("points", c.Len()),
				log.Any("min", lo),
				log.Any("max", hi),
			)
			return true
		})
	}
	if p.tracker == nil {
		return nil
	}
	if err := p.tracker.Initialize(p.host); err != nil {
		return err
	}
	p.logger.Info("position tracking initialized",
		log.String("mode", p.tracker.Mode().String()),
		log.Int("colliders", p.tracker.Len()),
	)
	return nil
}

// Update runs one frame: translation first, so the scan sees this frame's
// positions.
func (p *Plugin) Update(_ float64) error {
	p.frame++
	if p.tracker != nil {
		if err := p.tracker.Update(p.host); err != nil {
			return err
		}
	}
	if p.scanner == nil {
		return nil
	}
	n, err := p.scanner.Run(p.host, p.bus, p.frame)
	if n > 0 {
		p.logger.Debug("collisions published", log.Uint64("frame", p.frame), log.Int("events", n))
	}
	// Handler failures belong to the host; they never stop the frame.
	if err != nil {
		p.logger.Warn("collision handlers failed", log.Uint64("frame", p.frame), log.Error(err))
	}
	return nil
}

func (p *Plugin) debug() bool { return p.logger.GetLevel() == log.LevelDebug }

// logCollision is subscribed to the bus when the plugin logs at debug level.
func (p *Plugin) logCollision(ev bus.Event) error {
	ce, ok := AsCollision(ev)
	if !ok {
		return nil
	}
	fields := []log.Field{
		log.Uint64("frame", ce.Frame),
		log.String("entity", ce.Entity.String()),
		log.String("other", ce.Other.String()),
	}
	a, okA := p.host.Position(ce.Entity)
	b, okB := p.host.Position(ce.Other)
	if okA && okB {
		fields = append(fields, log.Float64("anchor_distance", physics.Distance(a, b)))
	}
	p.logger.Debug("collision", fields...)
	return nil
}
