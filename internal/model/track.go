package model

import "time"

// Track is one record of the mirrored catalog. RemoteID is the identifier
// assigned by the upstream catalog; ID is the local storage key.
type Track struct {
	ID         int64
	RemoteID   string
	Title      string
	Artist     string
	DurationMS int
	CreatedAt  time.Time
}
