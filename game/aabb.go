package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions, with
// the base of the box at Y=0.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// AABBFromCenterExtents returns a bounding box from a center point and
// half-extents on each axis.
func AABBFromCenterExtents(center, extents mgl32.Vec3) cube.BBox {
	return cube.Box(
		center.X()-extents.X(), center.Y()-extents.Y(), center.Z()-extents.Z(),
		center.X()+extents.X(), center.Y()+extents.Y(), center.Z()+extents.Z(),
	)
}

