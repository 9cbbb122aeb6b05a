package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/u1krsh/GenesisEngine/assert"
	"github.com/u1krsh/GenesisEngine/game"
)

// Update advances the simulation by one fixed tick. The phase order is a hard
// contract: jump resolution, gravity, movement model, stair climb, horizontal
// collision, vertical ground snap, depenetration. Reordering any of these
// changes observable behavior.
func (c *Controller) Update(dt float32) {
	assert.IsTrue(dt >= 0, "tick delta time must not be negative, got %f", dt)
	if dt == 0 {
		return
	}

	ctx := newTickContext(c, dt)
	defer putTickContext(ctx)
	ctx.simulate()
}

func (ctx *tickContext) simulate() {
	c := ctx.c
	c.dbg.Notify(DebugModeMovementSim, true, "BEGIN tick dt=%.4f pos=%v vel=%v", ctx.dt, c.pos, c.vel)

	if c.jumpCooldown > 0 {
		c.jumpCooldown -= ctx.dt
	}

	ctx.resolveJump()
	ctx.applyGravity()
	ctx.applyMovement()

	ctx.newPos = c.pos.Add(c.vel.Mul(ctx.dt))

	ctx.climbStairs()
	ctx.collideHorizontal()
	ctx.snapToGround()

	c.pos = ctx.newPos

	ctx.depenetrate()

	c.dbg.Notify(DebugModeMovementSim, true, "END tick pos=%v vel=%v grounded=%v", c.pos, c.vel, c.ground.Grounded)
}

// resolveJump consumes a pending jump request before any ground check so the
// player can leave the ground this tick. A jump is permitted when grounded, or
// airborne with air jumps remaining, and only once the cooldown has expired.
func (ctx *tickContext) resolveJump() {
	c := ctx.c
	if !c.wantsJump {
		return
	}

	if c.jumpCooldown <= 0 {
		canJump := false
		if c.ground.Grounded {
			canJump = true
		} else if c.airJumpsLeft > 0 {
			canJump = true
			c.airJumpsLeft--
		}

		if canJump {
			c.vel[1] = c.conf.JumpForce
			c.jumping = true
			c.jumpCooldown = c.conf.JumpCooldown
			c.ground.Grounded = false
			c.dbg.Notify(DebugModeMovementSim, true, "applied jump impulse %v (airJumpsLeft=%d)", c.vel, c.airJumpsLeft)
		}
	}
	c.wantsJump = false
}

// applyGravity pulls the player down unless they rest on ground. A grounded
// player that is jumping upward still receives gravity so the jump impulse is
// not frozen at its initial value.
func (ctx *tickContext) applyGravity() {
	c := ctx.c
	if !c.ground.Grounded || c.jumping {
		c.vel[1] -= c.conf.Gravity * ctx.dt
		c.vel[1] = math32.Max(c.vel[1], -c.conf.MaxFallSpeed)
	}
}

// applyMovement converts the move input into a velocity change using the
// ground or air acceleration model.
func (ctx *tickContext) applyMovement() {
	c := ctx.c

	maxSpeed := c.conf.WalkSpeed
	if c.sprinting && c.moving {
		maxSpeed = c.conf.SprintSpeed
	} else if c.crouching {
		maxSpeed = c.conf.CrouchSpeed
	}

	wishDir := c.ForwardXZ().Mul(c.moveInput.Z()).Add(c.RightXZ().Mul(c.moveInput.X()))
	wishSpeed := wishDir.Len()
	if wishSpeed > 1e-4 {
		wishDir = wishDir.Mul(1 / wishSpeed)
		wishSpeed = math32.Min(wishSpeed, 1) * maxSpeed
	} else {
		wishDir = mgl32.Vec3{}
		wishSpeed = 0
	}

	if c.ground.Grounded {
		ctx.applyFriction()
		ctx.applyGroundAcceleration(wishDir, wishSpeed)
	} else {
		ctx.applyAirAcceleration(wishDir, wishSpeed)
	}
}

// applyFriction slows grounded horizontal motion. Tiny speeds are zeroed
// outright, and friction is doubled when no input is held so releasing all
// keys stops crisply.
func (ctx *tickContext) applyFriction() {
	c := ctx.c
	speed := math32.Sqrt(game.Vec3HzDistSqr(c.vel))

	if speed < game.FrictionMinSpeed {
		c.vel[0] = 0
		c.vel[2] = 0
		return
	}

	friction := c.conf.GroundFriction
	if !c.moving {
		friction *= game.NoInputFrictionMultiplier
	}

	// Below stop-speed the drop is computed from stop-speed instead, so slow
	// players still come to rest in a bounded number of ticks.
	control := math32.Max(speed, c.conf.StopSpeed)
	drop := control * friction * ctx.dt

	newSpeed := math32.Max(0, speed-drop)
	scale := newSpeed / speed
	c.vel[0] *= scale
	c.vel[2] *= scale
}

// applyGroundAcceleration adds speed along the wish direction, capped so a
// single tick never overshoots the wish speed.
func (ctx *tickContext) applyGroundAcceleration(wishDir mgl32.Vec3, wishSpeed float32) {
	c := ctx.c
	currentSpeed := game.HorizontalVec(c.vel).Dot(wishDir)
	addSpeed := wishSpeed - currentSpeed
	if addSpeed <= 0 {
		return
	}

	accelSpeed := c.conf.GroundAccelerate * ctx.dt * wishSpeed
	if accelSpeed > addSpeed {
		accelSpeed = addSpeed
	}

	c.vel[0] += accelSpeed * wishDir.X()
	c.vel[2] += accelSpeed * wishDir.Z()
}

// applyAirAcceleration is the Source-style air control: the target speed along
// the wish direction is capped at a fraction of walk speed, but the applied
// acceleration uses the uncapped wish speed. The asymmetry is what makes
// strafe-jump speed gain possible and is preserved exactly.
func (ctx *tickContext) applyAirAcceleration(wishDir mgl32.Vec3, wishSpeed float32) {
	c := ctx.c
	wishSpeedCapped := math32.Min(wishSpeed, c.conf.AirSpeedCap*c.conf.WalkSpeed)

	currentSpeed := game.HorizontalVec(c.vel).Dot(wishDir)
	addSpeed := wishSpeedCapped - currentSpeed
	if addSpeed > 0 {
		accelSpeed := c.conf.AirAccelerate * ctx.dt * wishSpeed
		if accelSpeed > addSpeed {
			accelSpeed = addSpeed
		}
		c.vel[0] += accelSpeed * wishDir.X()
		c.vel[2] += accelSpeed * wishDir.Z()
	}

	if c.conf.AirFriction > 0 {
		speed := math32.Sqrt(game.Vec3HzDistSqr(c.vel))
		if speed > game.FrictionMinSpeed {
			drop := speed * c.conf.AirFriction * ctx.dt
			scale := math32.Max(0, speed-drop) / speed
			c.vel[0] *= scale
			c.vel[2] *= scale
		}
	}
}
