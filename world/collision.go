package world

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/u1krsh/GenesisEngine/game"
)

// The queries below are stateless per call and scan the full box list. Boxes
// are never individually mutated, so no locking is needed as long as Replace
// only runs between ticks.

// GroundHeight returns the highest ground level at the given XZ position that
// a player at playerY can stand on. A box top only qualifies if the query Y is
// at or above the top minus a tolerance, so geometry approached from the side
// is never treated as floor. If no box qualifies, the base floor height is
// returned.
func (w *World) GroundHeight(x, z, playerY float32) float32 {
	highest := w.floorHeight

	// The footprint is widened slightly so the player does not fall off a box
	// the instant their center crosses the edge.
	inset := w.queryRadius * 0.5
	for _, box := range w.boxes {
		if !box.Solid {
			continue
		}

		bb := box.AABB()
		if x < bb.Min().X()-inset || x > bb.Max().X()+inset ||
			z < bb.Min().Z()-inset || z > bb.Max().Z()+inset {
			continue
		}

		top := box.Top()
		if playerY >= top-game.GroundTopTolerance && top > highest {
			highest = top
		}
	}

	return highest
}

// CheckCollision reports whether the given query bounds are blocked by world
// geometry. The bounds are shrunk by a skin margin to avoid false positives
// from exact edge contact. Stair boxes within climb height of the query bottom
// never block, and a box whose top is close to the query bottom counts as
// being stood on rather than collided with.
func (w *World) CheckCollision(_ mgl32.Vec3, bounds cube.BBox) bool {
	shrunk := bounds.GrowVec3(mgl32.Vec3{-game.CollisionSkinXZ, -game.CollisionSkinY, -game.CollisionSkinXZ})
	bottom := shrunk.Min().Y()

	for _, box := range w.boxes {
		if !box.Solid {
			continue
		}

		bb := box.AABB()
		if !shrunk.IntersectsWith(bb) {
			continue
		}

		top := box.Top()
		if box.Stair() {
			heightAbove := top - bottom
			if heightAbove > 0 && heightAbove <= w.climbHeight {
				// Walkable stair, the auto-climb handles it.
				continue
			}
		}

		if bottom < top-game.StandOnTolerance {
			return true
		}
	}
	return false
}

// Penetration computes the smallest horizontal push-out vector that moves the
// given bounds out of overlapping solid geometry. It returns a zero vector and
// false when no overlap exists. Boxes the player is standing on top of and
// climbable stairs contribute no push.
func (w *World) Penetration(bounds cube.BBox) (mgl32.Vec3, bool) {
	var pushOut mgl32.Vec3
	smallest := float32(1000.0)
	anyOverlap := false

	bottom := bounds.Min().Y()
	for _, box := range w.boxes {
		if !box.Solid {
			continue
		}

		bb := box.AABB()
		overlapX := math32.Min(bounds.Max().X()-bb.Min().X(), bb.Max().X()-bounds.Min().X())
		overlapY := math32.Min(bounds.Max().Y()-bb.Min().Y(), bb.Max().Y()-bounds.Min().Y())
		overlapZ := math32.Min(bounds.Max().Z()-bb.Min().Z(), bb.Max().Z()-bounds.Min().Z())
		if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
			continue
		}

		top := box.Top()
		if box.Stair() {
			heightAbove := top - bottom
			if heightAbove > 0 && heightAbove <= w.climbHeight {
				continue
			}
		}

		anyOverlap = true
		if bottom >= top-game.StandingOnEpsilon {
			// Standing on top, no horizontal push needed.
			continue
		}

		playerCenterX := (bounds.Min().X() + bounds.Max().X()) * 0.5
		playerCenterZ := (bounds.Min().Z() + bounds.Max().Z()) * 0.5

		// Push along the horizontal axis with the least overlap; the Y axis is
		// left to the ground snap.
		if overlapX < overlapZ {
			push := overlapX + game.DepenetrationBias
			if push < smallest {
				smallest = push
				if playerCenterX < box.Center.X() {
					pushOut = mgl32.Vec3{-push, 0, 0}
				} else {
					pushOut = mgl32.Vec3{push, 0, 0}
				}
			}
		} else {
			push := overlapZ + game.DepenetrationBias
			if push < smallest {
				smallest = push
				if playerCenterZ < box.Center.Z() {
					pushOut = mgl32.Vec3{0, 0, -push}
				} else {
					pushOut = mgl32.Vec3{0, 0, push}
				}
			}
		}
	}

	return pushOut, anyOverlap
}

// StairClimbHeight returns the top of the highest stair-tagged box in front of
// the player that can be auto-climbed, or -1 if there is none. A stair
// qualifies when its top lies strictly above playerY by no more than maxHeight
// and its footprint, widened by the probe radius, contains the probe point
// ahead of the player along moveDir.
func (w *World) StairClimbHeight(x, z, playerY, radius, maxHeight float32, moveDir mgl32.Vec3) float32 {
	best := float32(-1.0)

	checkRadius := radius + game.StairProbeOffset
	checkX := x + moveDir.X()*checkRadius
	checkZ := z + moveDir.Z()*checkRadius

	for _, box := range w.boxes {
		if !box.Stair() || !box.Solid {
			continue
		}

		top := box.Top()
		heightAbove := top - playerY
		if heightAbove <= 0 || heightAbove > maxHeight {
			continue
		}

		bb := box.AABB()
		if checkX >= bb.Min().X()-checkRadius && checkX <= bb.Max().X()+checkRadius &&
			checkZ >= bb.Min().Z()-checkRadius && checkZ <= bb.Max().Z()+checkRadius {
			if top > best {
				best = top
			}
		}
	}

	return best
}

// RaycastDown casts a ray straight down from origin and returns the Y of the
// closest top face hit within maxDistance. Used for diagnostics only.
func (w *World) RaycastDown(origin mgl32.Vec3, maxDistance float32) (float32, bool) {
	hitY := w.floorHeight
	hit := false

	if origin.Y() >= w.floorHeight && origin.Y()-maxDistance <= w.floorHeight {
		hit = true
	}

	for _, box := range w.boxes {
		if !box.Solid {
			continue
		}

		bb := box.AABB()
		if origin.X() < bb.Min().X() || origin.X() > bb.Max().X() ||
			origin.Z() < bb.Min().Z() || origin.Z() > bb.Max().Z() {
			continue
		}

		top := box.Top()
		if top <= origin.Y() && top >= origin.Y()-maxDistance && top > hitY {
			hitY = top
			hit = true
		}
	}

	return hitY, hit
}
