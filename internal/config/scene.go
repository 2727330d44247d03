package config

import (
	"fmt"

	"github.com/zeusync/collider/internal/core/collision"
	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/systems/physics"
	"github.com/zeusync/collider/internal/core/world"
)

const (
	ShapeDisc      = "disc"
	ShapeRectangle = "rect"
	ShapeMerge     = "merge"
)

type Vec struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vec) Physics() physics.Vec2 { return physics.V2(v.X, v.Y) }

// Scene is a set of entities simulated for a number of frames.
type Scene struct {
	Name     string   `json:"name" yaml:"name"`
	Frames   int      `json:"frames" yaml:"frames"`
	Delta    float64  `json:"delta" yaml:"delta"`
	Entities []Entity `json:"entities" yaml:"entities"`
}

// Entity is spawned at Position with its shape built around that point and
// moves by Velocity every frame.
type Entity struct {
	Name     string `json:"name" yaml:"name"`
	Position Vec    `json:"position" yaml:"position"`
	Velocity Vec    `json:"velocity" yaml:"velocity"`
	Shape    Shape  `json:"shape" yaml:"shape"`
}

// Shape describes a sampled collider. Offset is relative to the entity
// position. Step defaults to 90 for discs.
type Shape struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Radius   float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Step     int     `json:"step,omitempty" yaml:"step,omitempty"`
	HalfX    int     `json:"half_x,omitempty" yaml:"half_x,omitempty"`
	HalfY    int     `json:"half_y,omitempty" yaml:"half_y,omitempty"`
	Rotation float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Offset   Vec     `json:"offset" yaml:"offset"`
	Parts    []Shape `json:"parts,omitempty" yaml:"parts,omitempty"`
}

func (s Scene) Validate() error {
	if s.Frames < 0 {
		return fmt.Errorf("%w: negative frame count %d", ErrInvalidScene, s.Frames)
	}
	for i, e := range s.Entities {
		if _, err := e.Shape.Build(e.Position.Physics()); err != nil {
			return fmt.Errorf("entity %d (%s): %w", i, e.Name, err)
		}
	}
	return nil
}

// Build samples the shape around anchor.
func (s Shape) Build(anchor physics.Vec2) (*collision.Collider, error) {
	center := anchor.Add(s.Offset.Physics())
	switch s.Kind {
	case ShapeDisc:
		step := s.Step
		if step == 0 {
			step = 90
		}
		return collision.NewDisc(s.Radius, center, step)
	case ShapeRectangle:
		return collision.NewRectangle(s.HalfX, s.HalfY, center, s.Rotation)
	case ShapeMerge:
		if len(s.Parts) == 0 {
			return nil, ErrEmptyMerge
		}
		var out *collision.Collider
		for i, part := range s.Parts {
			c, err := part.Build(center)
			if err != nil {
				return nil, fmt.Errorf("part %d: %w", i, err)
			}
			out = collision.Merge(out, c)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShapeKind, s.Kind)
	}
}

// Spawned maps scene entities to the ids the world assigned.
type Spawned struct {
	IDs        []models.EntityID
	Velocities map[models.EntityID]physics.Vec2
}

// Spawn builds every entity of the scene into w.
func (s Scene) Spawn(w *world.World) (*Spawned, error) {
	out := &Spawned{Velocities: make(map[models.EntityID]physics.Vec2)}
	for i, e := range s.Entities {
		pos := e.Position.Physics()
		c, err := e.Shape.Build(pos)
		if err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i, e.Name, err)
		}
		id := w.Spawn(e.Name, c, pos)
		out.IDs = append(out.IDs, id)
		if v := e.Velocity.Physics(); v != (physics.Vec2{}) {
			out.Velocities[id] = v
		}
	}
	return out, nil
}
