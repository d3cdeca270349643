// Package compass converts wind bearings to 16-point compass labels.
package compass

import "math"

const sectorWidth = 22.5

var points = [16]string{
	"N", "NNE", "NE", "ENE",
	"E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW",
	"W", "WNW", "NW", "NNW",
}

// Cardinal returns the 16-point compass label for a bearing in degrees. The
// bearing may be negative or exceed 360; it is normalized first.
func Cardinal(degrees float64) string {
	shifted := math.Mod(degrees+sectorWidth/2, 360)
	if shifted < 0 {
		shifted += 360
	}
	return points[int(shifted/sectorWidth)]
}
