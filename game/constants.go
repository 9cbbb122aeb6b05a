package game

// Tolerances and tuning constants shared between the player controller and
// the world collision queries. The skin margins keep exact edge contact from
// registering as a collision; the stand-on tolerances decide when a box top
// counts as floor rather than wall.
const (
	// Horizontal speeds below this are zeroed outright by ground friction.
	FrictionMinSpeed = float32(0.1)
	// Friction is multiplied by this when the player supplies no move input.
	NoInputFrictionMultiplier = float32(2.0)
	// Move input magnitudes below this do not count as "moving".
	MoveInputDeadzone = float32(0.01)

	// Skin margins applied to collision query bounds.
	CollisionSkinXZ = float32(0.05)
	CollisionSkinY  = float32(0.02)

	// A query bottom within this distance of a box top means the player is
	// standing on the box, not colliding with its side.
	StandOnTolerance = float32(0.6)
	// A box top counts as ground only if the query Y is at or above
	// top - GroundTopTolerance.
	GroundTopTolerance = float32(0.3)
	// Depenetration skips boxes whose top is within this of the player bottom.
	StandingOnEpsilon = float32(0.1)
	// Extra distance added to push-out vectors so the next tick starts clear.
	DepenetrationBias = float32(0.01)

	// The stair probe point sits radius+StairProbeOffset ahead of the player.
	StairProbeOffset = float32(0.1)

	// The horizontal blocking volume starts StepSafetyMargin above the
	// configured step height so low ledges never block sideways motion.
	StepSafetyMargin = float32(0.15)
	// XZ shrink applied to the horizontal blocking volume.
	ColliderShrinkFactor = float32(0.95)
	// Raised volumes shorter than this are not worth testing.
	MinCheckHeight = float32(0.1)
)
