package player

import "github.com/go-gl/mathgl/mgl32"

var upVec = mgl32.Vec3{0, 1, 0}

// GroundInfo describes the ground contact resolved for a single tick. It is
// recomputed from scratch every tick, never partially updated across ticks.
type GroundInfo struct {
	Grounded   bool
	Normal     mgl32.Vec3
	Distance   float32
	Point      mgl32.Vec3
	OnSlope    bool
	SlopeAngle float32
}

func newGroundInfo() GroundInfo {
	return GroundInfo{Normal: upVec}
}
