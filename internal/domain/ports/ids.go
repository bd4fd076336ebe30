package ports

import "time"

// IDGenerator produces collision-free opaque identifiers.
type IDGenerator interface {
	NewID() string
}

// Clock is the wall-clock source used to stamp creation and update times.
type Clock interface {
	Now() time.Time
}
