// Package notify delivers surf alerts over independent channels. Channels
// render the same grouped conditions into plain text and fail independently:
// a broken channel never blocks the others.
package notify

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spencer-p/surfalert/pkg/meta"
	"github.com/spencer-p/surfalert/pkg/spot"
)

// Notifier is a single delivery channel.
type Notifier interface {
	Name() string
	Notify(ranges []meta.GoodTimeRange, s spot.Spot) error
}

// All attempts delivery on every channel, logging failures. Returns the
// number of successful deliveries.
func All(notifiers []Notifier, ranges []meta.GoodTimeRange, s spot.Spot, logger zerolog.Logger) int {
	delivered := 0
	for _, n := range notifiers {
		if err := n.Notify(ranges, s); err != nil {
			logger.Error().Err(err).Str("channel", n.Name()).Msg("notification failed")
			continue
		}
		logger.Info().Str("channel", n.Name()).Msg("notification sent")
		delivered++
	}
	return delivered
}

// render builds the plain text alert message, one paragraph per range. The
// link, when given, is appended after each paragraph.
func render(ranges []meta.GoodTimeRange, s spot.Spot, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏄 Surf Alert - %s!\n\n", s.Name)
	for _, r := range ranges {
		fmt.Fprintf(&b, "%s\n", r.TimeRange)
		fmt.Fprintf(&b, "Wave Height: %s\n", r.WaveHeight)
		if r.WindSpeed != "" {
			fmt.Fprintf(&b, "Wind: %s from %s\n", r.WindSpeed, r.WindDirection)
		}
		fmt.Fprintf(&b, "Low Tide at: %s\n\n", r.LowTide)
		if link != "" {
			fmt.Fprintf(&b, "%s\n\n", link)
		}
	}
	return b.String()
}
