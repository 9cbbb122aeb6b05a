package world

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// World owns the flat list of collidable boxes for the currently loaded level
// together with the base floor height returned when no box qualifies as
// ground. It is written only between ticks, on level load, and is read-only
// for the rest of a level's lifetime.
type World struct {
	log *logrus.Logger

	boxes       []Box
	floorHeight float32

	// queryRadius is the player collider radius assumed by ground queries,
	// climbHeight the stair height treated as walkable by blocking and
	// penetration queries. Both are re-derived from the controller config by
	// the owner of the world.
	queryRadius float32
	climbHeight float32
}

// New returns an empty world with a floor at Y=0.
func New(log *logrus.Logger) *World {
	return &World{
		log:         log,
		queryRadius: 0.3,
		climbHeight: 0.5,
	}
}

// Clear removes all boxes from the world.
func (w *World) Clear() {
	w.boxes = w.boxes[:0]
}

// Replace swaps the world's box list wholesale. The caller must guarantee no
// tick is in flight.
func (w *World) Replace(boxes []Box) {
	w.boxes = boxes
	if w.log != nil {
		w.log.Debugf("world: replaced geometry (%d boxes)", len(boxes))
	}
}

// AddBox adds a solid box with the given center and half-extents.
func (w *World) AddBox(center, halfExtents mgl32.Vec3) {
	w.boxes = append(w.boxes, NewBox(center, halfExtents, TagDefault))
}

// AddCube adds a solid cube centered at the given position.
func (w *World) AddCube(x, y, z, size float32) {
	half := size * 0.5
	w.boxes = append(w.boxes, NewBox(mgl32.Vec3{x, y, z}, mgl32.Vec3{half, half, half}, TagDefault))
}

// AddSized adds a solid box from a center position and full dimensions.
func (w *World) AddSized(x, y, z, width, height, depth float32) {
	w.boxes = append(w.boxes, NewBox(mgl32.Vec3{x, y, z}, mgl32.Vec3{width * 0.5, height * 0.5, depth * 0.5}, TagDefault))
}

// AddStair adds an auto-climbable stair step from a center position and full
// dimensions.
func (w *World) AddStair(x, y, z, width, height, depth float32) {
	w.boxes = append(w.boxes, NewBox(mgl32.Vec3{x, y, z}, mgl32.Vec3{width * 0.5, height * 0.5, depth * 0.5}, TagStair))
}

// AddStairCube adds a cube-shaped auto-climbable stair step.
func (w *World) AddStairCube(x, y, z, size float32) {
	half := size * 0.5
	w.boxes = append(w.boxes, NewBox(mgl32.Vec3{x, y, z}, mgl32.Vec3{half, half, half}, TagStair))
}

// Boxes returns the world's box list. The returned slice must not be mutated.
func (w *World) Boxes() []Box {
	return w.boxes
}

// SetFloorHeight sets the base floor level returned when no box is underfoot.
func (w *World) SetFloorHeight(height float32) {
	w.floorHeight = height
}

// FloorHeight returns the base floor level.
func (w *World) FloorHeight() float32 {
	return w.floorHeight
}

// SetQueryRadius sets the player collider radius assumed by ground queries.
func (w *World) SetQueryRadius(radius float32) {
	w.queryRadius = radius
}

// SetClimbHeight sets the stair height treated as walkable by blocking and
// penetration queries. It should match the controller's auto-climb height.
func (w *World) SetClimbHeight(height float32) {
	w.climbHeight = height
}
