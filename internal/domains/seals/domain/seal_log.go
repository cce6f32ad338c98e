package domain

import "time"

// SealLog is a plain operational log entry for applied seals.
// The core treats it as an opaque record: no accounting is derived from it.
type SealLog struct {
	ID           int64
	SealNumber   string
	VehiclePlate string
	Notes        string
	CreatedAt    time.Time
}
