package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/u1krsh/GenesisEngine/game"
)

// climbStairs advances the player's Y toward the top of a stair-tagged box in
// front of them. Stair climbing is a teleport-like ground override: the player
// glides up at the configured climb speed, stays grounded and has vertical
// velocity zeroed, rather than riding a physical ramp. It is re-evaluated
// fresh every tick from the current position.
func (ctx *tickContext) climbStairs() {
	c := ctx.c
	if !c.autoClimb || c.src == nil || !c.ground.Grounded || !c.moving {
		return
	}

	var moveDir mgl32.Vec3
	horizSpeed := math32.Sqrt(game.Vec3HzDistSqr(c.vel))
	if horizSpeed > 0.1 {
		moveDir = mgl32.Vec3{c.vel.X() / horizSpeed, 0, c.vel.Z() / horizSpeed}
	}
	if moveDir.Len() <= 0.01 {
		return
	}

	stairTop := c.src.StairClimbHeight(
		ctx.newPos.X(), ctx.newPos.Z(), c.pos.Y(),
		c.conf.CapsuleRadius, c.conf.AutoClimbStairHeight, moveDir,
	)
	if stairTop <= 0 || stairTop <= c.pos.Y() {
		return
	}

	heightDiff := stairTop - c.pos.Y()
	climbAmount := c.conf.StairClimbSpeed * ctx.dt
	if climbAmount >= heightDiff {
		ctx.newPos[1] = stairTop
	} else {
		ctx.newPos[1] = c.pos.Y() + climbAmount
	}

	c.ground.Grounded = true
	c.vel[1] = 0
	c.dbg.Notify(DebugModeCollisions, true, "climbing stair toward y=%.3f (newY=%.3f)", stairTop, ctx.newPos.Y())
}

// collideHorizontal resolves sideways motion against world geometry. The
// blocking volume is raised above the step band and shrunk slightly on XZ so
// standing at ground level or walking onto low obstacles never falsely blocks.
// When the full move is blocked, the two horizontal axes are tested
// independently so the player slides along walls instead of sticking to them.
func (ctx *tickContext) collideHorizontal() {
	c := ctx.c
	if c.src == nil {
		return
	}

	stepOffset := c.conf.StepHeight + game.StepSafetyMargin
	checkHeight := c.height - stepOffset
	if checkHeight <= game.MinCheckHeight {
		return
	}

	checkExtents := mgl32.Vec3{
		c.conf.CapsuleRadius * game.ColliderShrinkFactor,
		checkHeight * 0.5,
		c.conf.CapsuleRadius * game.ColliderShrinkFactor,
	}
	// The volume is anchored at the current Y, not the candidate Y, so a fall
	// in the same tick cannot drag the band into the floor.
	checkY := c.pos.Y() + stepOffset + checkHeight*0.5

	blockedAt := func(x, z float32) bool {
		pos := mgl32.Vec3{x, c.pos.Y(), z}
		bb := game.AABBFromCenterExtents(mgl32.Vec3{x, checkY, z}, checkExtents)
		return c.blocked(pos, bb)
	}

	if !blockedAt(ctx.newPos.X(), ctx.newPos.Z()) {
		return
	}

	xBlocked := blockedAt(ctx.newPos.X(), c.pos.Z())
	zBlocked := blockedAt(c.pos.X(), ctx.newPos.Z())

	switch {
	case xBlocked && zBlocked:
		ctx.newPos[0] = c.pos.X()
		ctx.newPos[2] = c.pos.Z()
		c.vel[0] = 0
		c.vel[2] = 0
		c.dbg.Notify(DebugModeCollisions, true, "horizontal move blocked on both axes")
	case xBlocked:
		ctx.newPos[0] = c.pos.X()
		c.vel[0] = 0
		c.dbg.Notify(DebugModeCollisions, true, "sliding along Z, X blocked")
	case zBlocked:
		ctx.newPos[2] = c.pos.Z()
		c.vel[2] = 0
		c.dbg.Notify(DebugModeCollisions, true, "sliding along X, Z blocked")
	default:
		// Neither axis is blocked on its own but the combined move is: a
		// concave corner. Keep the axis with the larger displacement, then
		// re-verify that choice actually clears.
		xMove := math32.Abs(ctx.newPos.X() - c.pos.X())
		zMove := math32.Abs(ctx.newPos.Z() - c.pos.Z())
		if xMove > zMove {
			ctx.newPos[2] = c.pos.Z()
			c.vel[2] = 0
		} else {
			ctx.newPos[0] = c.pos.X()
			c.vel[0] = 0
		}

		if blockedAt(ctx.newPos.X(), ctx.newPos.Z()) {
			ctx.newPos[0] = c.pos.X()
			ctx.newPos[2] = c.pos.Z()
			c.vel[0] = 0
			c.vel[2] = 0
			c.dbg.Notify(DebugModeCollisions, true, "corner case unresolved, stopping")
		}
	}
}

// snapToGround resolves vertical motion against the ground height at the
// already-resolved XZ. The query uses the higher of the old and new Y as the
// search hint so fast falls do not tunnel past thin platforms. The ground info
// for the tick is rebuilt from scratch here.
func (ctx *tickContext) snapToGround() {
	c := ctx.c

	searchY := math32.Max(c.pos.Y(), ctx.newPos.Y())
	groundHeight := c.groundHeight(ctx.newPos.X(), ctx.newPos.Z(), searchY)

	wasGrounded := c.ground.Grounded
	c.ground = newGroundInfo()

	if ctx.newPos.Y() <= groundHeight {
		ctx.newPos[1] = groundHeight
		if c.vel.Y() < 0 {
			c.vel[1] = 0
		}

		c.ground.Grounded = true
		c.ground.Point = mgl32.Vec3{ctx.newPos.X(), groundHeight, ctx.newPos.Z()}
		c.updateSlope()

		c.jumping = false
		c.airJumpsLeft = c.conf.MaxAirJumps
		c.dbg.Notify(DebugModeMovementSim, wasGrounded != c.ground.Grounded, "landed at y=%.3f", groundHeight)
		return
	}

	dist := ctx.newPos.Y() - groundHeight
	c.ground.Distance = dist
	// Within the check distance the previous ground state persists; beyond it
	// the player is definitely airborne.
	if dist > c.conf.GroundCheckDistance {
		c.ground.Grounded = false
	} else {
		c.ground.Grounded = wasGrounded
		if wasGrounded {
			c.ground.Point = mgl32.Vec3{ctx.newPos.X(), groundHeight, ctx.newPos.Z()}
			c.updateSlope()
		}
	}
}

// updateSlope derives the slope fields from the ground normal. Box worlds
// always produce an up-facing normal, so these register flat ground; the
// fields are still carried for collaborators that read them.
func (c *Controller) updateSlope() {
	dotUp := c.ground.Normal.Dot(upVec)
	angle := mgl32.RadToDeg(math32.Acos(mgl32.Clamp(dotUp, -1, 1)))
	c.ground.SlopeAngle = angle
	c.ground.OnSlope = angle > 1
}

// depenetrate is the unconditional safety net that runs after the position has
// been committed. Any residual overlap left by the discrete steps above is
// resolved by the smallest horizontal push-out, and velocity along the pushed
// axis is zeroed so the overlap does not immediately recur.
func (ctx *tickContext) depenetrate() {
	c := ctx.c
	if c.src == nil {
		return
	}

	pushOut, overlapped := c.src.Penetration(c.AABB())
	if !overlapped {
		return
	}

	c.pos = c.pos.Add(pushOut)
	if pushOut.X() != 0 {
		c.vel[0] = 0
	}
	if pushOut.Z() != 0 {
		c.vel[2] = 0
	}
	c.dbg.Notify(DebugModeCollisions, pushOut != (mgl32.Vec3{}), "depenetrated by %v", pushOut)
}
