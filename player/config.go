package player

import "github.com/go-gl/mathgl/mgl32"

// ColliderType selects the collision shape used for the player's bounds.
type ColliderType uint8

const (
	ColliderCapsule ColliderType = iota
	ColliderBox
)

// Config holds every tunable of the kinematic controller. It is read-only
// during simulation and only replaced wholesale through Initialize or
// SetConfig, which also re-derive the collider dimensions.
type Config struct {
	// Collider settings.
	ColliderType    ColliderType
	CapsuleRadius   float32
	CapsuleHeight   float32
	AABBHalfExtents mgl32.Vec3

	// Max speeds.
	WalkSpeed   float32
	SprintSpeed float32
	CrouchSpeed float32

	// Ground movement.
	GroundAccelerate float32
	GroundFriction   float32
	StopSpeed        float32

	// Air movement. AirSpeedCap is a fraction of WalkSpeed limiting the air
	// acceleration target; the acceleration magnitude itself stays uncapped,
	// which is what makes strafe-jump speed gain possible.
	AirAccelerate float32
	AirSpeedCap   float32
	AirFriction   float32

	// Jumping.
	JumpForce    float32
	JumpCooldown float32
	MaxAirJumps  int

	// Gravity.
	Gravity      float32
	MaxFallSpeed float32

	// Ground detection.
	GroundCheckDistance float32
	MaxSlopeAngle       float32

	// Step and stair handling.
	StepHeight           float32
	StepSearchDistance   float32
	AutoClimbStairHeight float32
	StairClimbSpeed      float32

	// Camera.
	EyeHeight       float32
	CrouchEyeHeight float32

	// Ground level assumed when no collision source is attached.
	FloorHeight float32
}

// DefaultConfig returns the controller defaults.
func DefaultConfig() Config {
	return Config{
		ColliderType:    ColliderCapsule,
		CapsuleRadius:   0.3,
		CapsuleHeight:   1.8,
		AABBHalfExtents: mgl32.Vec3{0.3, 0.9, 0.3},

		WalkSpeed:   5.0,
		SprintSpeed: 7.5,
		CrouchSpeed: 2.5,

		GroundAccelerate: 15.0,
		GroundFriction:   12.0,
		StopSpeed:        3.0,

		AirAccelerate: 10.0,
		AirSpeedCap:   0.7,
		AirFriction:   0.0,

		JumpForce:    8.0,
		JumpCooldown: 0.1,
		MaxAirJumps:  0,

		Gravity:      20.0,
		MaxFallSpeed: 50.0,

		GroundCheckDistance: 0.1,
		MaxSlopeAngle:       45.0,

		StepHeight:           0.35,
		StepSearchDistance:   0.5,
		AutoClimbStairHeight: 0.5,
		StairClimbSpeed:      8.0,

		EyeHeight:       1.6,
		CrouchEyeHeight: 0.9,
	}
}

// sanitized clamps degenerate values at the boundary so a malformed config
// degrades into defaults instead of a motionless or clipping player. It
// reports whether anything had to be clamped.
func (c Config) sanitized() (Config, bool) {
	def := DefaultConfig()
	changed := false

	positive := func(v *float32, fallback float32) {
		if *v <= 0 {
			*v = fallback
			changed = true
		}
	}
	nonNegative := func(v *float32) {
		if *v < 0 {
			*v = 0
			changed = true
		}
	}

	positive(&c.CapsuleRadius, def.CapsuleRadius)
	positive(&c.CapsuleHeight, def.CapsuleHeight)

	nonNegative(&c.WalkSpeed)
	nonNegative(&c.SprintSpeed)
	nonNegative(&c.CrouchSpeed)
	nonNegative(&c.GroundAccelerate)
	nonNegative(&c.GroundFriction)
	nonNegative(&c.StopSpeed)
	nonNegative(&c.AirAccelerate)
	nonNegative(&c.AirSpeedCap)
	nonNegative(&c.AirFriction)
	nonNegative(&c.JumpForce)
	nonNegative(&c.JumpCooldown)
	nonNegative(&c.Gravity)
	nonNegative(&c.MaxFallSpeed)
	nonNegative(&c.GroundCheckDistance)
	nonNegative(&c.StepHeight)
	nonNegative(&c.StepSearchDistance)
	nonNegative(&c.AutoClimbStairHeight)
	nonNegative(&c.StairClimbSpeed)

	if c.MaxAirJumps < 0 {
		c.MaxAirJumps = 0
		changed = true
	}
	return c, changed
}
