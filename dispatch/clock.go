package dispatch

import (
	"time"

	"github.com/fwojciec/searchdrop"
)

var _ searchdrop.Clock = systemClock{}

// systemClock is the wall clock.
type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) searchdrop.Timer {
	return time.AfterFunc(d, f)
}

func (systemClock) Now() time.Time {
	return time.Now()
}
