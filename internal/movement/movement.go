// Package movement commits or rejects an entity's per-frame move against the world.
package movement

import (
	"chunkwalk/internal/input"
	"chunkwalk/internal/world"
)

// Space is the part of the world a move is checked against. *world.World implements it.
type Space interface {
	Normalize(p world.Position) world.Position
	IsWorldPointEmpty(p world.Position) bool
}

// Outcome is what a single step did.
type Outcome int

const (
	Idle      Outcome = iota // no delta this frame
	Committed                // stored position replaced by the candidate
	Rejected                 // a footprint sample was blocked, position unchanged
)

func (o Outcome) String() string {
	switch o {
	case Idle:
		return "idle"
	case Committed:
		return "committed"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Entity owns one canonical world position. Only Step writes it.
type Entity struct {
	position  world.Position
	HalfWidth float32 // meters, sampled left and right of the center
}

// NewEntity normalizes the seed position so the entity starts canonical.
func NewEntity(space Space, seed world.Position, width float32) *Entity {
	return &Entity{
		position:  space.Normalize(seed),
		HalfWidth: 0.5 * width,
	}
}

func (e *Entity) Position() world.Position {
	return e.position
}

// Footprint returns the center, left and right sample points around p.
func (e *Entity) Footprint(space Space, p world.Position) (center, left, right world.Position) {
	center = space.Normalize(p)
	left = space.Normalize(center.Offset(-e.HalfWidth, 0))
	right = space.Normalize(center.Offset(e.HalfWidth, 0))
	return center, left, right
}

// Step proposes a move by (dx, dy) meters and commits it only when the center and both
// horizontal edges of the footprint are empty. A rejected step moves nothing at all.
func (e *Entity) Step(space Space, dx, dy float32) Outcome {
	if dx == 0 && dy == 0 {
		return Idle
	}
	candidate, left, right := e.Footprint(space, e.position.Offset(dx, dy))
	if space.IsWorldPointEmpty(candidate) &&
		space.IsWorldPointEmpty(left) &&
		space.IsWorldPointEmpty(right) {
		e.position = candidate
		return Committed
	}
	return Rejected
}

// Mover turns held buttons into a step.
type Mover struct {
	Speed float32 // meters per second
}

// Delta is the displacement for one frame of held buttons.
func (m Mover) Delta(c *input.Controller, dt float32) (dx, dy float32) {
	dirX, dirY := input.MoveDirection(c)
	return dirX * m.Speed * dt, dirY * m.Speed * dt
}

func (m Mover) Update(space Space, e *Entity, c *input.Controller, dt float32) Outcome {
	dx, dy := m.Delta(c, dt)
	return e.Step(space, dx, dy)
}
