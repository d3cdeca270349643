// Package meta performs the surf analysis: it cross-references the hourly
// wave forecast with tide extremes and daylight to find good times to surf,
// then merges adjacent good times into displayable ranges.
package meta

import (
	"math"
	"time"

	"github.com/spencer-p/surfalert/pkg/daylight"
	"github.com/spencer-p/surfalert/pkg/stormglass"
)

// Conditions is the set of data we can perform meta analysis on.
type Conditions struct {
	Forecast stormglass.Hours
	Tides    stormglass.TideEvents

	// Threshold is the minimum surfable wave height in meters.
	Threshold float64

	// TideWindow is how far a forecast hour may be from a low tide event.
	TideWindow time.Duration

	// Daylight reports whether an instant has usable light.
	Daylight daylight.Func
}

// GoodTimes analyzes a set of Conditions to find good times to surf. Results
// come back in forecast order.
func GoodTimes(c Conditions) []GoodTime {
	result := []GoodTime{}
	processed := make(map[time.Time]bool)

	for _, hour := range c.Forecast {
		t := time.Time(hour.Time)

		// The feed occasionally repeats a timestamp. The first occurrence is
		// authoritative; later duplicates are always skipped, whatever their
		// own readings say.
		if processed[t] {
			continue
		}

		wave, ok := hour.Wave()
		if !ok {
			continue
		}
		processed[t] = true

		if wave < c.Threshold || !c.Daylight(t) {
			continue
		}

		lowTide, near := nearLowTide(t, c.Tides, c.TideWindow)
		if !near {
			continue
		}

		speed, direction := hour.Wind()
		result = append(result, GoodTime{
			Time:          t.Truncate(time.Minute),
			WaveHeight:    round1(wave),
			WindSpeed:     round1(speed),
			WindDirection: math.Round(direction),
			LowTide:       lowTide,
		})
	}

	return result
}

// nearLowTide reports whether t falls within window of a low tide event and
// returns that event's time. The first qualifying event in series order wins,
// even if a closer one appears later in the series.
// TODO: confirm whether nearest-match was intended before changing this.
func nearLowTide(t time.Time, tides stormglass.TideEvents, window time.Duration) (time.Time, bool) {
	for _, event := range tides {
		if event.Type != stormglass.LowTide {
			continue
		}
		et := time.Time(event.Time)
		diff := et.Sub(t)
		if diff < 0 {
			diff = -diff
		}
		if diff <= window {
			return et, true
		}
	}
	return time.Time{}, false
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
