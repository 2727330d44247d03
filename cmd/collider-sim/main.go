package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/collider/internal/config"
	"github.com/zeusync/collider/internal/core/collision"
	"github.com/zeusync/collider/internal/core/events/bus"
	"github.com/zeusync/collider/internal/core/observability/log"
	"github.com/zeusync/collider/internal/core/world"
	"github.com/zeusync/collider/internal/injector"
)

func main() {
	path := flag.String("config", "configs/collider-sim.yaml", "scene configuration (yaml or json)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *path); err != nil {
		fmt.Fprintln(os.Stderr, "collider-sim:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	collisionCfg, err := cfg.Plugin.Collision()
	if err != nil {
		return err
	}

	// scenes share nothing, so each runs on its own goroutine
	g, ctx := errgroup.WithContext(ctx)
	for _, scene := range cfg.Scenes {
		scene := scene
		g.Go(func() error {
			return simulate(ctx, logger.With(log.String("scene", scene.Name)), collisionCfg, scene)
		})
	}
	return g.Wait()
}

func simulate(ctx context.Context, logger log.Log, cfg collision.Config, scene config.Scene) error {
	w := world.New()
	spawned, err := scene.Spawn(w)
	if err != nil {
		return fmt.Errorf("scene %s: %w", scene.Name, err)
	}

	sim, err := injector.InitializeSimulation(logger, cfg, w)
	if err != nil {
		return fmt.Errorf("scene %s: %w", scene.Name, err)
	}

	mover := world.NewMover(w)
	for _, id := range spawned.IDs {
		if v, ok := spawned.Velocities[id]; ok {
			mover.SetVelocity(id, v)
		}
	}
	if err = sim.Runner.Register(mover); err != nil {
		return err
	}

	if cfg.Events {
		_, err = sim.Bus.Subscribe(collision.EventTypeCollision, func(ev bus.Event) error {
			ce, ok := collision.AsCollision(ev)
			if !ok {
				return nil
			}
			logger.Info("collision",
				log.Uint64("frame", ce.Frame),
				log.String("entity", w.Name(ce.Entity)),
				log.String("other", w.Name(ce.Other)),
			)
			return nil
		})
		if err != nil {
			return err
		}
	}

	if err = sim.Runner.InitializeAll(ctx); err != nil {
		return fmt.Errorf("scene %s: %w", scene.Name, err)
	}
	if err = sim.Runner.Run(ctx, scene.Frames, scene.Delta); err != nil {
		return fmt.Errorf("scene %s: %w", scene.Name, err)
	}

	m := sim.Bus.GetMetrics()
	logger.Info("scene finished",
		log.Uint64("frames", sim.Runner.Frame()),
		log.Uint64("collisions", m.Published),
	)
	return nil
}
