package runner

import "time"

// Clock schedules deferred callbacks. The engine uses it for the delayed
// return to the menu after a boss victory.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// deferredReturn is the single pending transition. Each schedule bumps the
// generation so a stale callback can tell it was superseded.
type deferredReturn struct {
	timer Timer
	gen   uint64
}

func (d *deferredReturn) cancel() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
