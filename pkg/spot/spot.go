// Package spot defines the surf spots the alert watches.
package spot

import (
	"time"

	"github.com/spencer-p/surfalert/pkg/daylight"
)

// Spot is a named surf location.
type Spot struct {
	Name   string
	Region string
	Place  daylight.Place
}

var (
	Killiney = Spot{
		Name:   "Killiney Beach",
		Region: "Ireland",
		Place: daylight.Place{
			Lat:      53.2557,
			Long:     -6.1124,
			Location: locationOrPanic("Europe/Dublin"),
		},
	}
)

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
