package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Float32ApproxEq determines whether two floating point numbers are close enough
// to each other by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// HorizontalVec returns the vector with its Y component zeroed.
func HorizontalVec(vec3 mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec3.X(), 0, vec3.Z()}
}

// ForwardXZ returns the forward basis vector on the horizontal plane for the
// given yaw in degrees. Pitch never affects movement direction.
func ForwardXZ(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Cos(yawRad), 0, math32.Sin(yawRad)}
}

// RightXZ returns the right basis vector on the horizontal plane for the given
// yaw in degrees.
func RightXZ(yaw float32) mgl32.Vec3 {
	yawRad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{-math32.Sin(yawRad), 0, math32.Cos(yawRad)}
}

// DirectionVector returns a direction vector from the given yaw and pitch values.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		m * math32.Cos(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Sin(yawRad),
	}
}
