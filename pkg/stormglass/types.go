package stormglass

import (
	"encoding/json"
	"fmt"
	"time"
)

// Verify the custom types can be unmarshaled.
var _ json.Unmarshaler = &Time{}
var _ json.Unmarshaler = new(Tide)

// Time is an instant as encoded by Stormglass ("2006-01-02T15:04:05+00:00").
type Time time.Time

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("sample time %q not string: %w", buf, err)
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("sample time %q not in fmt %q: %w", s, time.RFC3339, err)
	}
	*t = Time(parsed)
	return nil
}

// Reading holds one metric keyed by data source. Sources other than the
// synthesized guess are decoded and ignored.
type Reading struct {
	SG *float64 `json:"sg"`
}

// Hour is a single hourly forecast sample. Metric fields are absent when the
// provider has no reading for that hour.
type Hour struct {
	Time          Time     `json:"time"`
	WaveHeight    *Reading `json:"waveHeight"`
	WindSpeed     *Reading `json:"windSpeed"`
	WindDirection *Reading `json:"windDirection"`
}

// Wave returns the wave height in meters and whether a reading is present.
func (h Hour) Wave() (float64, bool) {
	if h.WaveHeight == nil || h.WaveHeight.SG == nil {
		return 0, false
	}
	return *h.WaveHeight.SG, true
}

// Wind returns the wind speed (m/s) and direction (degrees), defaulting to
// zero when either reading is absent.
func (h Hour) Wind() (speed, direction float64) {
	if h.WindSpeed != nil && h.WindSpeed.SG != nil {
		speed = *h.WindSpeed.SG
	}
	if h.WindDirection != nil && h.WindDirection.SG != nil {
		direction = *h.WindDirection.SG
	}
	return speed, direction
}

// Hours is a time series of Hour.
type Hours []Hour

// Tide encodes a low or high tide event type.
type Tide uint

const (
	HighTide Tide = iota
	LowTide
)

func (t Tide) Valid() bool {
	return t == HighTide || t == LowTide
}

func (t *Tide) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("tide %q not a string: %w", buf, err)
	}
	switch s {
	case "high":
		*t = HighTide
	case "low":
		*t = LowTide
	default:
		return fmt.Errorf("invalid tide type %q", s)
	}
	return nil
}

func (t Tide) String() string {
	switch t {
	case HighTide:
		return "high"
	case LowTide:
		return "low"
	default:
		return "invalid"
	}
}

// TideEvent is a single predicted tide extreme.
type TideEvent struct {
	Time Time `json:"time"`
	Type Tide `json:"type"`
}

func (e TideEvent) String() string {
	return fmt.Sprintf("{t: %s, type: %s}",
		time.Time(e.Time).Format(time.RFC822),
		e.Type.String())
}

// TideEvents is a time series of TideEvent. It is sampled independently of
// the hourly forecast and is not aligned to it.
type TideEvents []TideEvent

// weatherResult is the envelope returned by the weather point endpoint.
type weatherResult struct {
	Hours Hours `json:"hours"`
}

// tideResult is the envelope returned by the tide extremes endpoint.
type tideResult struct {
	Data TideEvents `json:"data"`
}
