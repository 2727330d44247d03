//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"
	"github.com/zeusync/collider/internal/core/collision"
	"github.com/zeusync/collider/internal/core/events/bus"
	"github.com/zeusync/collider/internal/core/observability/log"
)

func InitializeSimulation(logger log.Log, cfg collision.Config, host collision.Host) (*Simulation, error) {
	wire.Build(bus.New, ProvidePlugin, ProvideRunner, wire.Struct(new(Simulation), "*"))
	return nil, nil
}
