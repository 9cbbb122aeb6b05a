package world

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Tag identifies special geometry types. Only TagDefault and TagStair affect
// collision resolution; the remaining tags are reserved.
type Tag uint8

const (
	TagDefault Tag = iota
	TagStair
	TagRamp
	TagPlatform
	TagTrigger
)

// String ...
func (t Tag) String() string {
	switch t {
	case TagDefault:
		return "default"
	case TagStair:
		return "stair"
	case TagRamp:
		return "ramp"
	case TagPlatform:
		return "platform"
	case TagTrigger:
		return "trigger"
	}
	return "unknown"
}

// Box is a collidable axis-aligned box in the world. Boxes are immutable after
// insertion; the world replaces its whole box list on level (re)load.
type Box struct {
	Center      mgl32.Vec3
	HalfExtents mgl32.Vec3
	Solid       bool
	Tag         Tag
}

// NewBox returns a solid box with the given center, half-extents and tag.
func NewBox(center, halfExtents mgl32.Vec3, tag Tag) Box {
	return Box{Center: center, HalfExtents: halfExtents, Solid: true, Tag: tag}
}

// AABB returns the bounding box spanned by the box's center and half-extents.
func (b Box) AABB() cube.BBox {
	return cube.Box(
		b.Center.X()-b.HalfExtents.X(), b.Center.Y()-b.HalfExtents.Y(), b.Center.Z()-b.HalfExtents.Z(),
		b.Center.X()+b.HalfExtents.X(), b.Center.Y()+b.HalfExtents.Y(), b.Center.Z()+b.HalfExtents.Z(),
	)
}

// Top returns the Y coordinate of the box's upper face.
func (b Box) Top() float32 {
	return b.Center.Y() + b.HalfExtents.Y()
}

// Bottom returns the Y coordinate of the box's lower face.
func (b Box) Bottom() float32 {
	return b.Center.Y() - b.HalfExtents.Y()
}

// Stair returns true if the box is tagged as an auto-climb stair.
func (b Box) Stair() bool {
	return b.Tag == TagStair
}
