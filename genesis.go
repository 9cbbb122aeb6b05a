package genesis

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/u1krsh/GenesisEngine/assert"
	"github.com/u1krsh/GenesisEngine/level"
	"github.com/u1krsh/GenesisEngine/omath"
	"github.com/u1krsh/GenesisEngine/player"
	"github.com/u1krsh/GenesisEngine/world"
)

// DefaultTickRate is the simulation rate used when none is given.
const DefaultTickRate = 64

// maxTicksPerFrame caps how many fixed ticks a single Advance call may run.
// A long stall then slows the simulation down instead of spiraling into an
// ever-growing accumulator.
const maxTicksPerFrame = 8

// tickSampleWindow is how many recent tick durations are kept for stats.
const tickSampleWindow = 128

// Engine owns a world and a player controller and steps them on a fixed
// timestep. Frame time is fed in through Advance; the engine converts it
// into zero or more fixed simulation ticks.
type Engine struct {
	log *logrus.Logger

	world  *world.World
	player *player.Controller

	dt          float32
	accumulator float32

	mu      sync.Mutex
	pending *level.Level
	current *level.Level

	tickCount   uint64
	tickSamples []float64
}

// New returns an engine running at the given tick rate. A tick rate of zero
// or below falls back to DefaultTickRate.
func New(log *logrus.Logger, tickRate int) *Engine {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}

	w := world.New(log)
	c := player.New(log)
	c.SetCollisionSource(w)

	e := &Engine{
		log:         log,
		world:       w,
		player:      c,
		dt:          1.0 / float32(tickRate),
		tickSamples: make([]float64, 0, tickSampleWindow),
	}
	e.syncWorldConfig()
	return e
}

// World returns the engine's world.
func (e *Engine) World() *world.World {
	return e.world
}

// Player returns the engine's player controller.
func (e *Engine) Player() *player.Controller {
	return e.player
}

// TickDelta returns the fixed timestep in seconds.
func (e *Engine) TickDelta() float32 {
	return e.dt
}

// TickCount returns how many fixed ticks have run so far.
func (e *Engine) TickCount() uint64 {
	return e.tickCount
}

// Configure applies a new player configuration and keeps the world's query
// parameters in step with it.
func (e *Engine) Configure(conf player.Config) {
	e.player.SetConfig(conf)
	e.syncWorldConfig()
}

// QueueLevel stages a level to be applied before the next tick. Swapping
// between ticks keeps every tick running against a single consistent level.
func (e *Engine) QueueLevel(l *level.Level) {
	assert.IsTrue(l != nil, "queued level must not be nil")
	e.mu.Lock()
	e.pending = l
	e.mu.Unlock()
}

// CurrentLevel returns the level the engine is simulating, or nil if none
// has been applied yet.
func (e *Engine) CurrentLevel() *level.Level {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// Advance feeds frameDt seconds of real time into the engine and runs the
// fixed ticks that fit. It returns the number of ticks run.
func (e *Engine) Advance(frameDt float32) int {
	assert.IsTrue(frameDt >= 0, "frame delta must not be negative (got %f)", frameDt)

	e.accumulator += frameDt
	ticks := 0
	for e.accumulator >= e.dt && ticks < maxTicksPerFrame {
		e.tick()
		e.accumulator -= e.dt
		ticks++
	}
	if e.accumulator >= e.dt {
		// The frame overran the tick cap. Drop the remainder so the next
		// frame starts from a small accumulator.
		e.log.Debugf("engine: dropping %.4fs of accumulated time after %d ticks", e.accumulator, ticks)
		e.accumulator = 0
	}
	return ticks
}

// Alpha returns the interpolation fraction in [0,1) describing how far the
// accumulator has progressed into the next tick. Renderers can use it to
// blend between the last two simulated states.
func (e *Engine) Alpha() float32 {
	return e.accumulator / e.dt
}

// Tick runs exactly one fixed tick, applying any staged level first.
func (e *Engine) Tick() {
	e.tick()
}

// TickStats returns the mean and standard deviation of recent tick durations
// in milliseconds.
func (e *Engine) TickStats() (mean, stdDev float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.tickSamples) == 0 {
		return 0, 0
	}
	return omath.Mean(e.tickSamples), omath.StdDev(e.tickSamples)
}

func (e *Engine) tick() {
	e.applyPending()

	start := time.Now()
	e.player.Update(e.dt)
	elapsed := float64(time.Since(start)) / float64(time.Millisecond)

	e.mu.Lock()
	if len(e.tickSamples) >= tickSampleWindow {
		e.tickSamples = e.tickSamples[1:]
	}
	e.tickSamples = append(e.tickSamples, elapsed)
	e.mu.Unlock()

	e.tickCount++
}

func (e *Engine) applyPending() {
	e.mu.Lock()
	l := e.pending
	e.pending = nil
	prev := e.current
	e.mu.Unlock()
	if l == nil {
		return
	}

	l.Apply(e.world)
	// A reload of the running level swaps geometry in place; only an actual
	// level change respawns the player.
	if prev == nil || prev.Name != l.Name {
		e.player.Teleport(l.Spawn)
	}

	e.mu.Lock()
	e.current = l
	e.mu.Unlock()
	e.log.Infof("engine: switched to level %s (%d boxes)", l.Name, len(l.Boxes))
}

func (e *Engine) syncWorldConfig() {
	conf := e.player.Config()
	e.world.SetFloorHeight(conf.FloorHeight)
	e.world.SetQueryRadius(conf.CapsuleRadius)
	e.world.SetClimbHeight(conf.AutoClimbStairHeight)
}
