// Preview prints the surfable windows for the coming days without sending
// any notifications. Useful for eyeballing the analysis against the live
// feed.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/spencer-p/surfalert/pkg/daylight"
	"github.com/spencer-p/surfalert/pkg/meta"
	"github.com/spencer-p/surfalert/pkg/spot"
	"github.com/spencer-p/surfalert/pkg/stormglass"
)

const fetchTimeout = 10 * time.Second

type Config struct {
	StormglassAPIKey string `envconfig:"STORMGLASS_API_KEY" required:"true"`

	WaveHeightThreshold float64 `split_words:"true" default:"1.0"`
	TideWindowHours     int     `split_words:"true" default:"2"`
	GroupGapHours       int     `split_words:"true" default:"1"`
	ForecastDays        int     `split_words:"true" default:"5"`
}

func main() {
	var env Config
	if err := envconfig.Process("", &env); err != nil {
		fmt.Printf("incomplete configuration: %v\n", err)
		os.Exit(1)
	}

	here := spot.Killiney
	client := stormglass.NewClient(stormglass.ClientConfig{
		APIKey: env.StormglassAPIKey,
		Logger: zerolog.Nop(),
	})

	now := time.Now()
	query := &stormglass.PointQuery{
		Lat:    here.Place.Lat,
		Lng:    here.Place.Long,
		Start:  now,
		End:    now.AddDate(0, 0, env.ForecastDays),
		Params: []string{"waveHeight", "windSpeed", "windDirection"},
	}

	waveCtx, waveCancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer waveCancel()
	forecast, err := client.Weather(waveCtx, query)
	if err != nil {
		fmt.Printf("failed to fetch forecast: %v\n", err)
		os.Exit(1)
	}

	tideCtx, tideCancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer tideCancel()
	tides, err := client.TideExtremes(tideCtx, query)
	if err != nil {
		fmt.Printf("failed to fetch tides: %v\n", err)
		os.Exit(1)
	}

	goodTimes := meta.GoodTimes(meta.Conditions{
		Forecast:   forecast,
		Tides:      tides,
		Threshold:  env.WaveHeightThreshold,
		TideWindow: time.Duration(env.TideWindowHours) * time.Hour,
		Daylight:   daylight.ForPlace(here.Place),
	})
	ranges := meta.Group(goodTimes, meta.GroupOptions{
		Gap:         time.Duration(env.GroupGapHours) * time.Hour,
		IncludeWind: true,
	})

	if len(ranges) == 0 {
		fmt.Println("no ideal conditions found")
		return
	}
	for i := range ranges {
		fmt.Printf("%s\n", ranges[i].String())
	}
}
