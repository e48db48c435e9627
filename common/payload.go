package common

import "time"

// DefaultBands is the full-disk band selection fetched when none is given:
// the visible bands (1-3) and the NIR/SWIR bands (4-6).
var DefaultBands = []int{1, 2, 3, 4, 5, 6}

// Slot describes one full-disk acquisition to fetch.
type Slot struct {
	// Time of the acquisition, truncated to the minute.
	Time time.Time
	// Bands to fetch. Empty means DefaultBands.
	Bands []int
	// Bucket overrides the epoch-derived bucket (for tests and mirrors).
	Bucket string
}
