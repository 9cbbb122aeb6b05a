package player

import (
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
	"github.com/u1krsh/GenesisEngine/world"
)

func testControllerWithWorld() (*Controller, *world.World) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	w := world.New(log)
	c := New(log)
	c.SetCollisionSource(w)
	w.SetQueryRadius(c.Config().CapsuleRadius)
	w.SetClimbHeight(c.Config().AutoClimbStairHeight)
	return c, w
}

func TestWallStopsForwardMovement(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddSized(1.5, 1.5, 0, 1, 3, 20) // wall face at x=1

	c.SetMoveInput(mgl32.Vec3{0, 0, 1}) // yaw 0: forward is +X
	step(c, 128)

	if x := c.Position().X(); x >= 1 || x < 0.5 {
		t.Fatalf("player should be held just short of the wall, got x=%v", x)
	}
	if vx := c.Velocity().X(); vx != 0 {
		t.Fatalf("velocity into the wall should be zeroed, got %v", vx)
	}
}

func TestWallSlide(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddSized(1.5, 1.5, 0, 1, 3, 20) // wall face at x=1, long in Z

	// Diagonal input into the wall: X is absorbed, Z keeps sliding.
	c.SetMoveInput(mgl32.Vec3{1, 0, 1})
	step(c, 128)

	pos := c.Position()
	if pos.X() >= 1 {
		t.Fatalf("player clipped into the wall, x=%v", pos.X())
	}
	if pos.Z() < 2 {
		t.Fatalf("player should slide along the wall in Z, got z=%v", pos.Z())
	}
}

func TestConcaveCornerStops(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddSized(1.5, 1.5, 0, 1, 3, 20) // wall face at x=1
	w.AddSized(0, 1.5, 1.5, 20, 3, 1) // wall face at z=1

	c.SetMoveInput(mgl32.Vec3{1, 0, 1})
	step(c, 192)

	pos := c.Position()
	if pos.X() >= 1 || pos.Z() >= 1 {
		t.Fatalf("player escaped the corner, pos=%v", pos)
	}
	if pos.X() < 0.3 || pos.Z() < 0.3 {
		t.Fatalf("player should be wedged near the corner, pos=%v", pos)
	}
	if s := hzSpeed(c); s >= c.Config().WalkSpeed {
		t.Fatalf("player wedged in the corner should not keep full speed, got %v", s)
	}
}

func TestDepenetrationPushesOut(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddSized(0, 1, 0, 2, 2, 2) // x,z in [-1,1]

	c.SetPosition(mgl32.Vec3{0.9, 0, 0})
	c.Update(testDt)

	if x := c.Position().X(); x <= 1 {
		t.Fatalf("overlapping player should be pushed out past the face, got x=%v", x)
	}
	if vx := c.Velocity().X(); vx != 0 {
		t.Fatalf("velocity along the pushed axis should be zeroed, got %v", vx)
	}

	// The push resolves the overlap in a single tick.
	if _, overlapped := w.Penetration(c.AABB()); overlapped {
		t.Fatal("player still overlaps geometry after depenetration")
	}
}

func TestStairAutoClimb(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddStair(1, 0.15, 0, 1, 0.3, 2) // top 0.3, x in [0.5, 1.5]

	c.SetMoveInput(mgl32.Vec3{0, 0, 1}) // forward +X, into the stair

	reached := false
	for i := 0; i < 128; i++ {
		c.Update(testDt)
		if c.Position().X() >= 1 {
			reached = true
			break
		}
	}
	if !reached {
		t.Fatal("player never reached the stair")
	}
	approx(t, "height on stair", c.Position().Y(), 0.3, 1e-3)
	if !c.Grounded() {
		t.Fatal("player on the stair top should be grounded")
	}

	// Walking off the far edge drops back to the floor.
	landed := false
	for i := 0; i < 256; i++ {
		c.Update(testDt)
		if c.Position().X() > 2.5 && c.Grounded() {
			landed = true
			break
		}
	}
	if !landed {
		t.Fatal("player never landed past the stair")
	}
	approx(t, "height past stair", c.Position().Y(), 0, 1e-3)
}

func TestStairClimbDisabled(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddStair(1, 0.15, 0, 1, 0.3, 2)

	c.SetAutoClimbStairs(false)
	c.SetMoveInput(mgl32.Vec3{0, 0, 1})

	step(c, 32)
	// Auto-climb off: the stair still does not block (it sits below the
	// raised blocking volume) but the glide is gone; the ground snap alone
	// lifts the player when its footprint reaches the stair.
	if c.Position().X() < 0.3 {
		t.Fatalf("low stair should not block movement, got x=%v", c.Position().X())
	}
}

func TestWalkOntoRaisedPlatform(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddSized(3, 0.1, 0, 2, 0.2, 4) // low ledge, top 0.2, x in [2,4]

	c.SetMoveInput(mgl32.Vec3{0, 0, 1})
	for i := 0; i < 128; i++ {
		c.Update(testDt)
		if c.Position().X() >= 3 {
			break
		}
	}
	approx(t, "height on ledge", c.Position().Y(), 0.2, 1e-3)
	if !c.Grounded() {
		t.Fatal("player on the ledge should be grounded")
	}
}

func TestTallWallBlocksJump(t *testing.T) {
	c, w := testControllerWithWorld()
	w.AddSized(1.5, 3, 0, 1, 6, 20) // wall face at x=1, 6 high

	c.SetMoveInput(mgl32.Vec3{0, 0, 1})
	step(c, 8)
	c.Jump()
	step(c, 128)

	if x := c.Position().X(); x >= 1 {
		t.Fatalf("player jumped through the wall, x=%v", x)
	}
}

func TestGroundedPersistsWithinCheckDistance(t *testing.T) {
	c, _ := testControllerWithWorld()
	step(c, 2)
	if !c.Grounded() {
		t.Fatal("player should start grounded on the floor")
	}

	// A lift smaller than the ground check distance keeps ground contact.
	c.SetPosition(c.Position().Add(mgl32.Vec3{0, 0.05, 0}))
	c.Update(testDt)
	if !c.Grounded() {
		t.Fatal("small lift within check distance should stay grounded")
	}
}
