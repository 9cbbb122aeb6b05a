package player

import "github.com/sirupsen/logrus"

// Debug modes that can be toggled on the controller's debugger.
const (
	DebugModeMovementSim = iota
	DebugModeCollisions
)

// Debugger traces the tick pipeline through the controller's logger. All
// modes are off by default so the hot path does no formatting.
type Debugger struct {
	log   *logrus.Logger
	modes map[int]bool
}

// NewDebugger returns a debugger writing to the given logger.
func NewDebugger(log *logrus.Logger) *Debugger {
	return &Debugger{log: log, modes: map[int]bool{}}
}

// Toggle enables or disables the given debug mode.
func (d *Debugger) Toggle(mode int, enabled bool) {
	d.modes[mode] = enabled
}

// Enabled returns true if the given debug mode is enabled.
func (d *Debugger) Enabled(mode int) bool {
	return d.modes[mode]
}

// Notify logs the given message at debug level if the mode is enabled and the
// condition holds.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...interface{}) {
	if !cond || !d.modes[mode] || d.log == nil {
		return
	}
	d.log.Debugf(format, args...)
}
