package searchdrop

import "time"

// Clock schedules deferred callbacks. It exists so that debounce timing can
// be driven manually in tests.
type Clock interface {
	// AfterFunc calls f in its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer

	// Now returns the current time.
	Now() time.Time
}

// Timer is a pending callback created by Clock.AfterFunc.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or the timer was already stopped.
	Stop() bool
}
