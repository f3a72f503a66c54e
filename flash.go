package searchdrop

import "time"

// FlashTimeout is how long a flash message stays visible.
const FlashTimeout = 5 * time.Second

// FlashLevel classifies a flash message.
type FlashLevel int

// FlashLevel values.
const (
	FlashInfo FlashLevel = iota
	FlashError
)

// Flash is a transient, user-visible notice.
type Flash struct {
	Message   string
	Level     FlashLevel
	ExpiresAt time.Time
}

// NewFlash returns a flash message that expires FlashTimeout after now.
func NewFlash(level FlashLevel, message string, now time.Time) *Flash {
	return &Flash{Message: message, Level: level, ExpiresAt: now.Add(FlashTimeout)}
}

// Expired reports whether the message should no longer be shown at now.
func (f *Flash) Expired(now time.Time) bool {
	return !now.Before(f.ExpiresAt)
}
