package core

import (
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the clock so that status timestamps and signature
// tolerance checks can be pinned in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) Duration
}
