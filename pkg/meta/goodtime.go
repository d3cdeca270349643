package meta

import (
	"fmt"
	"time"
)

const (
	clockFmt = "15:04"
	labelFmt = "Monday 15:04"
)

// GoodTime represents a single forecast hour that is good to surf.
type GoodTime struct {
	// Time of the forecast sample, minute precision, UTC.
	Time time.Time

	// WaveHeight in meters, rounded to one decimal.
	WaveHeight float64

	// WindSpeed in m/s, rounded to one decimal. Converted to km/h only at
	// display time.
	WindSpeed float64

	// WindDirection in whole degrees.
	WindDirection float64

	// LowTide is the time of the low tide event this hour qualified against.
	LowTide time.Time
}

func (gt *GoodTime) String() string {
	return fmt.Sprintf("%s, %.1fm waves, low tide at %s",
		gt.Time.Format(labelFmt),
		gt.WaveHeight,
		gt.LowTide.Format(clockFmt))
}
