package meta

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/surfalert/pkg/stormglass"
)

func reading(v float64) *stormglass.Reading {
	return &stormglass.Reading{SG: &v}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 12, hour, minute, 0, 0, time.UTC)
}

// officeHours stands in for the real daylight filter.
func officeHours(t time.Time) bool {
	h := t.UTC().Hour()
	return h >= 9 && h <= 18
}

func TestNearLowTideFirstMatchWins(t *testing.T) {
	// The 09:30 event is nearer to the query, but 10:00 comes first in the
	// series and must win.
	tides := stormglass.TideEvents{
		{Time: stormglass.Time(at(10, 0)), Type: stormglass.LowTide},
		{Time: stormglass.Time(at(9, 30)), Type: stormglass.LowTide},
	}

	got, ok := nearLowTide(at(9, 45), tides, 2*time.Hour)
	if !ok {
		t.Fatalf("expected a qualifying low tide")
	}
	if want := at(10, 0); !got.Equal(want) {
		t.Errorf("nearLowTide = %v, want %v", got, want)
	}
}

func TestNearLowTideSkipsHighTides(t *testing.T) {
	tides := stormglass.TideEvents{
		{Time: stormglass.Time(at(10, 0)), Type: stormglass.HighTide},
		{Time: stormglass.Time(at(16, 30)), Type: stormglass.LowTide},
	}

	if _, ok := nearLowTide(at(10, 0), tides, 2*time.Hour); ok {
		t.Errorf("expected no qualifying low tide near a high tide")
	}
	if _, ok := nearLowTide(at(15, 0), tides, 2*time.Hour); !ok {
		t.Errorf("expected the 16:30 low tide to qualify")
	}
}

func TestNearLowTideOutsideWindow(t *testing.T) {
	tides := stormglass.TideEvents{
		{Time: stormglass.Time(at(16, 30)), Type: stormglass.LowTide},
	}

	if _, ok := nearLowTide(at(10, 0), tides, 2*time.Hour); ok {
		t.Errorf("expected no low tide within the window")
	}
}

func TestGoodTimes(t *testing.T) {
	lowTide := at(10, 41)
	tides := stormglass.TideEvents{
		{Time: stormglass.Time(at(4, 17)), Type: stormglass.HighTide},
		{Time: stormglass.Time(lowTide), Type: stormglass.LowTide},
	}

	forecast := stormglass.Hours{
		// Qualifies, with wind readings rounded.
		{Time: stormglass.Time(at(9, 0)), WaveHeight: reading(1.24), WindSpeed: reading(4.26), WindDirection: reading(210.6)},
		// Below threshold.
		{Time: stormglass.Time(at(10, 0)), WaveHeight: reading(0.4)},
		// No wave height reading at all.
		{Time: stormglass.Time(at(11, 0))},
		// Qualifies; missing wind defaults to zero.
		{Time: stormglass.Time(at(12, 0)), WaveHeight: reading(1.5)},
		// Too far from low tide.
		{Time: stormglass.Time(at(14, 0)), WaveHeight: reading(1.5)},
		// After daylight.
		{Time: stormglass.Time(at(20, 0)), WaveHeight: reading(2.0)},
	}

	got := GoodTimes(Conditions{
		Forecast:   forecast,
		Tides:      tides,
		Threshold:  1.0,
		TideWindow: 2 * time.Hour,
		Daylight:   officeHours,
	})

	want := []GoodTime{
		{Time: at(9, 0), WaveHeight: 1.2, WindSpeed: 4.3, WindDirection: 211, LowTide: lowTide},
		{Time: at(12, 0), WaveHeight: 1.5, WindSpeed: 0, WindDirection: 0, LowTide: lowTide},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect good times (-want,+got):\n%s", diff)
	}
}

func TestGoodTimesDeduplicates(t *testing.T) {
	lowTide := at(10, 41)
	tides := stormglass.TideEvents{
		{Time: stormglass.Time(lowTide), Type: stormglass.LowTide},
	}

	forecast := stormglass.Hours{
		// First occurrence accepted.
		{Time: stormglass.Time(at(10, 0)), WaveHeight: reading(1.5)},
		// Duplicate timestamp skipped despite the bigger waves.
		{Time: stormglass.Time(at(10, 0)), WaveHeight: reading(2.5)},
		// First occurrence rejected on threshold; the rejection sticks.
		{Time: stormglass.Time(at(11, 0)), WaveHeight: reading(0.5)},
		{Time: stormglass.Time(at(11, 0)), WaveHeight: reading(2.5)},
	}

	got := GoodTimes(Conditions{
		Forecast:   forecast,
		Tides:      tides,
		Threshold:  1.0,
		TideWindow: 2 * time.Hour,
		Daylight:   officeHours,
	})

	want := []GoodTime{
		{Time: at(10, 0), WaveHeight: 1.5, LowTide: lowTide},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect good times (-want,+got):\n%s", diff)
	}
}

// A sample without a wave height reading is skipped without being marked, so
// a later sample at the same timestamp still gets evaluated.
func TestGoodTimesMissingWaveDoesNotMark(t *testing.T) {
	lowTide := at(10, 41)
	tides := stormglass.TideEvents{
		{Time: stormglass.Time(lowTide), Type: stormglass.LowTide},
	}

	forecast := stormglass.Hours{
		{Time: stormglass.Time(at(10, 0))},
		{Time: stormglass.Time(at(10, 0)), WaveHeight: reading(1.5)},
	}

	got := GoodTimes(Conditions{
		Forecast:   forecast,
		Tides:      tides,
		Threshold:  1.0,
		TideWindow: 2 * time.Hour,
		Daylight:   officeHours,
	})

	want := []GoodTime{
		{Time: at(10, 0), WaveHeight: 1.5, LowTide: lowTide},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("incorrect good times (-want,+got):\n%s", diff)
	}
}

func TestGoodTimeString(t *testing.T) {
	table := []struct {
		gt   GoodTime
		want string
	}{{
		gt:   GoodTime{Time: at(9, 0), WaveHeight: 1.2, LowTide: at(10, 41)},
		want: "Tuesday 09:00, 1.2m waves, low tide at 10:41",
	}, {
		gt:   GoodTime{Time: at(13, 0), WaveHeight: 2.3, LowTide: at(14, 10)},
		want: "Tuesday 13:00, 2.3m waves, low tide at 14:10",
	}}

	for _, tc := range table {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.gt.String(); got != tc.want {
				t.Errorf("got %q, wanted %q", got, tc.want)
			}
		})
	}
}

func TestGoodTimesEmptyForecast(t *testing.T) {
	got := GoodTimes(Conditions{
		Threshold:  1.0,
		TideWindow: 2 * time.Hour,
		Daylight:   officeHours,
	})
	if len(got) != 0 {
		t.Errorf("expected no good times, got %v", got)
	}
}
