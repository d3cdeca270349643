package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/spencer-p/surfalert/pkg/daylight"
	"github.com/spencer-p/surfalert/pkg/meta"
	"github.com/spencer-p/surfalert/pkg/notify"
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
	IncludeWind         bool    `split_words:"true" default:"true"`

	SMTPHost      string   `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort      int      `envconfig:"SMTP_PORT" default:"587"`
	EmailAddress  string   `split_words:"true" required:"true"`
	EmailPassword string   `split_words:"true" required:"true"`
	EmailTo       []string `split_words:"true" required:"true"`

	TwilioAccountSID string `envconfig:"TWILIO_ACCOUNT_SID" required:"true"`
	TwilioAuthToken  string `envconfig:"TWILIO_AUTH_TOKEN" required:"true"`
	TwilioFrom       string `split_words:"true" required:"true"`
	WhatsappTo       string `split_words:"true" required:"true"`
}

func main() {
	os.Exit(run())
}

func run() int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	var env Config
	if err := envconfig.Process("", &env); err != nil {
		logger.Error().Err(err).Msg("incomplete configuration")
		return 1
	}

	here := spot.Killiney
	logger.Info().Str("spot", here.Name).Str("region", here.Region).Msg("starting condition check")

	client := stormglass.NewClient(stormglass.ClientConfig{
		APIKey: env.StormglassAPIKey,
		Logger: logger,
	})

	params := []string{"waveHeight"}
	if env.IncludeWind {
		params = append(params, "windSpeed", "windDirection")
	}
	now := time.Now()
	query := &stormglass.PointQuery{
		Lat:    here.Place.Lat,
		Lng:    here.Place.Long,
		Start:  now,
		End:    now.AddDate(0, 0, env.ForecastDays),
		Params: params,
	}

	waveCtx, waveCancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer waveCancel()
	forecast, err := client.Weather(waveCtx, query)
	if err != nil {
		logger.Error().Err(err).Msg("failed to get wave data")
		return 1
	}
	logger.Info().Int("hours", len(forecast)).Msg("wave data received")

	tideCtx, tideCancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer tideCancel()
	tides, err := client.TideExtremes(tideCtx, query)
	if err != nil {
		if errors.Is(err, stormglass.ErrQuotaExceeded) {
			logger.Error().Err(err).Msg("tide API quota exceeded or payment required")
		} else {
			logger.Error().Err(err).Msg("failed to get tide data")
		}
		return 1
	}
	logger.Info().Int("events", len(tides)).Msg("tide data received")

	goodTimes := meta.GoodTimes(meta.Conditions{
		Forecast:   forecast,
		Tides:      tides,
		Threshold:  env.WaveHeightThreshold,
		TideWindow: time.Duration(env.TideWindowHours) * time.Hour,
		Daylight:   daylight.ForPlace(here.Place),
	})
	if len(goodTimes) == 0 {
		logger.Info().Msg("no ideal conditions found during daylight hours")
		return 0
	}
	logger.Info().Int("count", len(goodTimes)).Msg("found good conditions during daylight hours")
	for i := range goodTimes {
		logger.Debug().Str("instant", goodTimes[i].String()).Msg("good time")
	}

	ranges := meta.Group(goodTimes, meta.GroupOptions{
		Gap:         time.Duration(env.GroupGapHours) * time.Hour,
		IncludeWind: env.IncludeWind,
	})
	for i := range ranges {
		logger.Info().Str("window", ranges[i].String()).Msg("surfable window")
	}

	notifiers := []notify.Notifier{
		notify.NewEmail(notify.EmailConfig{
			Host:     env.SMTPHost,
			Port:     env.SMTPPort,
			Address:  env.EmailAddress,
			Password: env.EmailPassword,
			To:       env.EmailTo,
		}),
		notify.NewWhatsApp(notify.WhatsAppConfig{
			AccountSID: env.TwilioAccountSID,
			AuthToken:  env.TwilioAuthToken,
			From:       env.TwilioFrom,
			To:         env.WhatsappTo,
		}),
	}
	delivered := notify.All(notifiers, ranges, here, logger)
	logger.Info().Int("delivered", delivered).Msg("condition check finished")
	return 0
}
