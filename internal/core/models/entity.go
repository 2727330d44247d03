package models

import "strconv"

// EntityID is the opaque identifier a host assigns to an entity. The
// collision engine never interprets it beyond equality and map keys.
type EntityID uint64

// InvalidEntity is never handed out by a host.
const InvalidEntity EntityID = 0

func (id EntityID) String() string { return strconv.FormatUint(uint64(id), 10) }

// IsValid reports whether id is a real entity handle.
func (id EntityID) IsValid() bool { return id != InvalidEntity }
