package collision

import (
	"github.com/zeusync/collider/internal/core/models"
	"github.com/zeusync/collider/internal/core/systems/physics"
)

// Host is the capability the entity runtime lends the collision engine.
//
// Each must visit tracked entities in the same order on every call as long as
// the tracked set is unchanged; the indexed tracker relies on it. Returning
// false from fn stops the iteration. The collider pointer handed to fn is the
// host's own storage, so Translate mutates it in place.
type Host interface {
	Each(fn func(id models.EntityID, c *Collider) bool)
	Position(id models.EntityID) (physics.Vec2, bool)
}

type tracked struct {
	id       models.EntityID
	collider *Collider
}

func collect(host Host) []tracked {
	var out []tracked
	host.Each(func(id models.EntityID, c *Collider) bool {
		out = append(out, tracked{id: id, collider: c})
		return true
	})
	return out
}
