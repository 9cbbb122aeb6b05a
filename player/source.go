package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// CollisionSource is the controller's single substitution point for world
// geometry queries. A nil source is a valid operating mode: the controller
// then simulates against flat ground at the configured floor height with no
// collision, which keeps it deterministic with zero world geometry.
type CollisionSource interface {
	// GroundHeight returns the ground level at the given XZ position for a
	// player currently at playerY.
	GroundHeight(x, z, playerY float32) float32
	// CheckCollision reports whether the given candidate position and query
	// bounds are blocked by world geometry.
	CheckCollision(pos mgl32.Vec3, bounds cube.BBox) bool
	// Penetration returns the push-out vector resolving any overlap of the
	// given bounds with world geometry, and whether any overlap exists.
	Penetration(bounds cube.BBox) (mgl32.Vec3, bool)
	// StairClimbHeight returns the top of the highest auto-climbable stair in
	// front of the player, or a negative sentinel if there is none.
	StairClimbHeight(x, z, playerY, radius, maxHeight float32, moveDir mgl32.Vec3) float32
}

// SetCollisionSource attaches the world geometry queries used by the
// controller. Passing nil switches to the flat-ground fallback.
func (c *Controller) SetCollisionSource(src CollisionSource) {
	c.src = src
}

func (c *Controller) groundHeight(x, z, playerY float32) float32 {
	if c.src == nil {
		return c.conf.FloorHeight
	}
	return c.src.GroundHeight(x, z, playerY)
}

func (c *Controller) blocked(pos mgl32.Vec3, bounds cube.BBox) bool {
	if c.src == nil {
		return false
	}
	return c.src.CheckCollision(pos, bounds)
}
