package injector

import (
	"github.com/zeusync/collider/internal/core/collision"
	"github.com/zeusync/collider/internal/core/events/bus"
	"github.com/zeusync/collider/internal/core/observability/log"
	"github.com/zeusync/collider/internal/core/systems"
)

// Simulation is a collision plugin registered on a frame runner.
type Simulation struct {
	Logger log.Log
	Bus    bus.EventBus
	Plugin *collision.Plugin
	Runner *systems.Runner
}

func ProvidePlugin(cfg collision.Config, host collision.Host, logger log.Log, b bus.EventBus) (*collision.Plugin, error) {
	return collision.NewPlugin(cfg, host, collision.WithEventBus(b), collision.WithLogger(logger))
}

func ProvideRunner(logger log.Log, plugin *collision.Plugin) (*systems.Runner, error) {
	r := systems.NewRunner(logger)
	if err := r.Register(plugin); err != nil {
		return nil, err
	}
	return r, nil
}
