package meta

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spencer-p/surfalert/pkg/compass"
)

const mpsToKph = 3.6

// GroupOptions configures how good times merge into display ranges.
type GroupOptions struct {
	// Gap is the largest time difference between consecutive good times that
	// still merges them into one range.
	Gap time.Duration

	// IncludeWind adds the wind speed range and direction to each range.
	IncludeWind bool
}

// GoodTimeRange is a run of adjacent good times merged for display.
type GoodTimeRange struct {
	// TimeRange is a label like "Tuesday 11:00-13:00".
	TimeRange string

	// WaveHeight is the min-max wave height, like "1.2-1.5m".
	WaveHeight string

	// WindSpeed is the min-max wind speed converted to km/h, like "12-18kph".
	// Empty unless grouping included wind.
	WindSpeed string

	// WindDirection is the cardinal wind direction of the first hour in the
	// range. Empty unless grouping included wind.
	WindDirection string

	// LowTide is the low tide time of the first hour, like "10:41".
	LowTide string
}

// Group merges temporally adjacent good times into ranges. The input must be
// chronologically sorted. This is a single left-to-right pass: each good time
// either extends the open group or closes it and starts the next one. The
// final open group is always flushed.
func Group(times []GoodTime, opts GroupOptions) []GoodTimeRange {
	result := []GoodTimeRange{}
	if len(times) == 0 {
		return result
	}

	group := []GoodTime{times[0]}
	for _, gt := range times[1:] {
		if gt.Time.Sub(group[len(group)-1].Time) <= opts.Gap {
			group = append(group, gt)
			continue
		}
		result = append(result, closeGroup(group, opts))
		group = []GoodTime{gt}
	}
	return append(result, closeGroup(group, opts))
}

func closeGroup(group []GoodTime, opts GroupOptions) GoodTimeRange {
	first, last := group[0], group[len(group)-1]

	minWave, maxWave := first.WaveHeight, first.WaveHeight
	minWind, maxWind := first.WindSpeed, first.WindSpeed
	for _, gt := range group[1:] {
		minWave = math.Min(minWave, gt.WaveHeight)
		maxWave = math.Max(maxWave, gt.WaveHeight)
		minWind = math.Min(minWind, gt.WindSpeed)
		maxWind = math.Max(maxWind, gt.WindSpeed)
	}

	r := GoodTimeRange{
		TimeRange:  fmt.Sprintf("%s-%s", first.Time.Format(labelFmt), last.Time.Format(clockFmt)),
		WaveHeight: fmt.Sprintf("%.1f-%.1fm", minWave, maxWave),
		LowTide:    first.LowTide.Format(clockFmt),
	}
	if opts.IncludeWind {
		r.WindSpeed = fmt.Sprintf("%.0f-%.0fkph",
			math.Round(minWind*mpsToKph),
			math.Round(maxWind*mpsToKph))
		r.WindDirection = compass.Cardinal(first.WindDirection)
	}
	return r
}

func (r *GoodTimeRange) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s waves", r.TimeRange, r.WaveHeight)
	if r.WindSpeed != "" {
		fmt.Fprintf(&b, ", wind %s from %s", r.WindSpeed, r.WindDirection)
	}
	fmt.Fprintf(&b, ", low tide at %s", r.LowTide)
	return b.String()
}
