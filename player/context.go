package player

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// tickContext carries the scratch state of a single tick through the pipeline
// phases. Contexts are recycled through a pool so steady-state ticks do not
// allocate.
type tickContext struct {
	c  *Controller
	dt float32

	// newPos is the provisional position being resolved; it is committed to
	// the controller after vertical resolution.
	newPos mgl32.Vec3
}

var ctxPool = sync.Pool{
	New: func() any {
		return &tickContext{}
	},
}

func newTickContext(c *Controller, dt float32) *tickContext {
	ctx := ctxPool.Get().(*tickContext)
	ctx.c = c
	ctx.dt = dt
	return ctx
}

func putTickContext(ctx *tickContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *tickContext) reset() {
	ctx.c = nil
	ctx.dt = 0
	ctx.newPos = mgl32.Vec3{}
}
