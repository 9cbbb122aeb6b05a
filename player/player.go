package player

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/u1krsh/GenesisEngine/game"
)

// Controller owns the player's kinematic state and advances it one fixed tick
// at a time. It reads world geometry only through its CollisionSource and is
// strictly single-threaded: all methods must be called from the tick loop.
type Controller struct {
	log *logrus.Logger
	dbg *Debugger

	conf Config
	src  CollisionSource

	pos, vel  mgl32.Vec3
	moveInput mgl32.Vec3

	// Orientation in degrees. Pitch is clamped to [-89, 89].
	yaw, pitch float32

	ground GroundInfo

	sprinting bool
	crouching bool
	jumping   bool
	moving    bool

	// wantsJump is an edge-triggered request consumed at the start of the
	// next tick, unlike the level-sensed sprint/crouch/move inputs.
	wantsJump    bool
	jumpCooldown float32
	airJumpsLeft int

	// height is the current collider height; it snaps between the full and
	// half capsule height on crouch toggle.
	height float32

	autoClimb bool
}

// New returns a controller with the default configuration applied and all
// dynamic state zeroed.
func New(log *logrus.Logger) *Controller {
	c := &Controller{
		log:       log,
		dbg:       NewDebugger(log),
		autoClimb: true,
	}
	c.Initialize(DefaultConfig())
	return c
}

// Initialize applies the given configuration, re-derives the collider
// dimensions and zeroes all dynamic state.
func (c *Controller) Initialize(conf Config) {
	c.setConfig(conf)
	c.Reset()
}

// Reset clears all dynamic state without touching the configuration.
func (c *Controller) Reset() {
	c.vel = mgl32.Vec3{}
	c.moveInput = mgl32.Vec3{}
	c.sprinting = false
	c.crouching = false
	c.jumping = false
	c.moving = false
	c.wantsJump = false
	c.jumpCooldown = 0
	c.airJumpsLeft = c.conf.MaxAirJumps
	c.ground = newGroundInfo()
	c.updateCollider()
}

// SetConfig replaces the configuration and re-derives the collider dimensions,
// keeping the dynamic state intact.
func (c *Controller) SetConfig(conf Config) {
	c.setConfig(conf)
}

func (c *Controller) setConfig(conf Config) {
	sane, clamped := conf.sanitized()
	if clamped && c.log != nil {
		c.log.Warnf("player: degenerate controller config values were clamped")
	}
	c.conf = sane
	c.updateCollider()
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.conf
}

// Dbg returns the controller's pipeline debugger.
func (c *Controller) Dbg() *Debugger {
	return c.dbg
}

// SetMoveInput sets the 2D move input for the next ticks. X is strafe, Z is
// forward. The horizontal magnitude is clamped to 1.
func (c *Controller) SetMoveInput(input mgl32.Vec3) {
	length := math32.Sqrt(input.X()*input.X() + input.Z()*input.Z())
	if length > 1 {
		input[0] /= length
		input[2] /= length
	}
	c.moveInput = input
	c.moving = length > game.MoveInputDeadzone
}

// SetLookDirection sets the absolute yaw and pitch in degrees. Pitch is
// clamped to [-89, 89].
func (c *Controller) SetLookDirection(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = mgl32.Clamp(pitch, -89, 89)
}

// Jump requests a jump. The request is consumed at the start of the next tick.
func (c *Controller) Jump() {
	c.wantsJump = true
}

// SetSprinting sets the sprint level. Sprinting while crouched is rejected.
func (c *Controller) SetSprinting(sprinting bool) {
	c.sprinting = sprinting && !c.crouching
}

// SetCrouching sets the crouch level. Entering crouch clears sprint and snaps
// the collider to half height.
func (c *Controller) SetCrouching(crouching bool) {
	c.crouching = crouching
	if crouching {
		c.sprinting = false
	}
	c.updateCollider()
}

// Position returns the player's feet position in world space.
func (c *Controller) Position() mgl32.Vec3 {
	return c.pos
}

// SetPosition places the player without touching velocity or ground state.
func (c *Controller) SetPosition(pos mgl32.Vec3) {
	c.pos = pos
}

// Teleport places the player discontinuously, discarding velocity and forcing
// an immediate ground re-check.
func (c *Controller) Teleport(pos mgl32.Vec3) {
	c.pos = pos
	c.vel = mgl32.Vec3{}
	c.checkGround()
	c.dbg.Notify(DebugModeMovementSim, true, "teleported to %v", pos)
}

// Velocity returns the player's velocity.
func (c *Controller) Velocity() mgl32.Vec3 {
	return c.vel
}

// SetVelocity replaces the player's velocity.
func (c *Controller) SetVelocity(vel mgl32.Vec3) {
	c.vel = vel
}

// AddVelocity adds to the player's velocity.
func (c *Controller) AddVelocity(vel mgl32.Vec3) {
	c.vel = c.vel.Add(vel)
}

// Yaw returns the yaw in degrees.
func (c *Controller) Yaw() float32 {
	return c.yaw
}

// Pitch returns the pitch in degrees.
func (c *Controller) Pitch() float32 {
	return c.pitch
}

// EyePosition returns the camera anchor: the feet position raised by the
// crouch-aware eye height. Not smoothed.
func (c *Controller) EyePosition() mgl32.Vec3 {
	eyeHeight := c.conf.EyeHeight
	if c.crouching {
		eyeHeight = c.conf.CrouchEyeHeight
	}
	return c.pos.Add(mgl32.Vec3{0, eyeHeight, 0})
}

// LookDirection returns the full look vector derived from yaw and pitch.
func (c *Controller) LookDirection() mgl32.Vec3 {
	return game.DirectionVector(c.yaw, c.pitch)
}

// ForwardXZ returns the forward direction on the horizontal plane.
func (c *Controller) ForwardXZ() mgl32.Vec3 {
	return game.ForwardXZ(c.yaw)
}

// RightXZ returns the right direction on the horizontal plane.
func (c *Controller) RightXZ() mgl32.Vec3 {
	return game.RightXZ(c.yaw)
}

// Grounded returns true if the player rests on ground resolved this tick.
func (c *Controller) Grounded() bool {
	return c.ground.Grounded
}

// OnSlope returns true if the resolved ground deviates from horizontal.
func (c *Controller) OnSlope() bool {
	return c.ground.OnSlope
}

// Sprinting returns true if the player is sprinting and actually moving.
func (c *Controller) Sprinting() bool {
	return c.sprinting && c.moving
}

// Crouching returns true if the player is crouching.
func (c *Controller) Crouching() bool {
	return c.crouching
}

// Jumping returns true while the player is in a jump started by a consumed
// jump request.
func (c *Controller) Jumping() bool {
	return c.jumping
}

// Falling returns true if the player is airborne and moving downward.
func (c *Controller) Falling() bool {
	return !c.ground.Grounded && c.vel.Y() < 0
}

// GroundInfo returns the ground contact resolved for the current tick.
func (c *Controller) GroundInfo() GroundInfo {
	return c.ground
}

// AirJumpsLeft returns the number of air jumps still available.
func (c *Controller) AirJumpsLeft() int {
	return c.airJumpsLeft
}

// SetAutoClimbStairs enables or disables stair auto-climbing.
func (c *Controller) SetAutoClimbStairs(enabled bool) {
	c.autoClimb = enabled
}

// AutoClimbStairs returns true if stair auto-climbing is enabled.
func (c *Controller) AutoClimbStairs() bool {
	return c.autoClimb
}

// ColliderHeight returns the current collider height, which toggles between
// the full and half capsule height on crouch.
func (c *Controller) ColliderHeight() float32 {
	return c.height
}

// AABB returns the player's current world-space bounds, used for collision
// queries and debug drawing.
func (c *Controller) AABB() cube.BBox {
	if c.conf.ColliderType == ColliderCapsule {
		return game.AABBFromDimensions(c.conf.CapsuleRadius*2, c.height).Translate(c.pos)
	}
	half := c.conf.AABBHalfExtents
	return game.AABBFromCenterExtents(c.pos.Add(mgl32.Vec3{0, half.Y(), 0}), half)
}

func (c *Controller) updateCollider() {
	c.height = c.conf.CapsuleHeight
	if c.crouching {
		c.height = c.conf.CapsuleHeight * 0.5
	}
}

// checkGround re-resolves the ground contact at the current position, used
// after discontinuous placement.
func (c *Controller) checkGround() {
	c.ground = newGroundInfo()
	if c.jumping && c.vel.Y() > 0 {
		return
	}

	groundHeight := c.groundHeight(c.pos.X(), c.pos.Z(), c.pos.Y())
	dist := c.pos.Y() - groundHeight

	// Extend the check distance when falling fast so thin platforms are not
	// tunneled through between ticks.
	checkDist := c.conf.GroundCheckDistance
	if c.vel.Y() < 0 {
		checkDist = math32.Max(checkDist, math32.Abs(c.vel.Y())*0.02)
	}

	if dist <= checkDist {
		c.ground.Grounded = true
		c.ground.Distance = dist
		c.ground.Point = mgl32.Vec3{c.pos.X(), groundHeight, c.pos.Z()}

		if dist <= 0 {
			c.pos[1] = groundHeight
			if c.vel.Y() < 0 {
				c.vel[1] = 0
			}
		}
	}
}
