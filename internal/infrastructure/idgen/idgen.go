// Package idgen provides the production identifier and clock sources.
package idgen

import (
	"time"

	"github.com/google/uuid"
)

// UUID generates random version 4 UUID strings.
type UUID struct{}

// NewID returns a new UUID string.
func (UUID) NewID() string {
	return uuid.New().String()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
