// Package daylight decides whether an instant falls within the usable
// daylight window at a place on the coast. The window is the solar day with
// the low-light edges trimmed off.
package daylight

import (
	"time"

	"github.com/keep94/sunrise"

	"github.com/spencer-p/surfalert/pkg/timetricks"
)

const (
	// padding excludes the first and last half hour of light.
	padding = 30 * time.Minute

	// maxAlignDays bounds the sunrise alignment loop. If we cannot land on
	// the requested calendar day within this many steps, there is no usable
	// sunrise for that day.
	maxAlignDays = 4
)

// Place is a lat/long coordinate on the Earth matched with its time zone.
type Place struct {
	Lat, Long float64
	Location  *time.Location
}

// Func reports whether an instant is within the padded daylight window.
type Func func(t time.Time) bool

// ForPlace builds a Func for the given place. The returned Func fails closed:
// if sunrise and sunset cannot be computed for the instant's calendar day, it
// reports false rather than guessing.
func ForPlace(p Place) Func {
	return func(t time.Time) bool {
		local := t.In(p.Location)

		// Start the search half a day before the calendar day begins so the
		// alignment loop only ever needs to walk forward.
		// The sunrise package is not very clean with its dates.
		var s sunrise.Sunrise
		s.Around(p.Lat, p.Long, timetricks.TrimClock(local).Add(-12*time.Hour))

		aligned := false
		for i := 0; i < maxAlignDays; i++ {
			if timetricks.SameDay(local, s.Sunrise()) {
				aligned = true
				break
			}
			s.AddDays(1)
		}
		if !aligned {
			return false
		}

		first := s.Sunrise().Add(padding)
		last := s.Sunset().Add(-padding)
		return !local.Before(first) && !local.After(last)
	}
}
