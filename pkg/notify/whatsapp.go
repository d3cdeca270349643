package notify

import (
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/spencer-p/surfalert/pkg/meta"
	"github.com/spencer-p/surfalert/pkg/spot"
)

// WhatsAppConfig configures the WhatsApp channel.
type WhatsAppConfig struct {
	AccountSID string
	AuthToken  string

	// From and To are WhatsApp-qualified numbers, like "whatsapp:+3538...".
	From string
	To   string

	// Timeout bounds the API call. Defaults to 10 seconds.
	Timeout time.Duration
}

// WhatsApp delivers alerts through the Twilio messages API.
type WhatsApp struct {
	cfg  WhatsAppConfig
	rest *twilio.RestClient
}

func NewWhatsApp(cfg WhatsAppConfig) *WhatsApp {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	c := &twilioclient.Client{
		Credentials: twilioclient.NewCredentials(cfg.AccountSID, cfg.AuthToken),
	}
	c.SetTimeout(cfg.Timeout)
	c.SetAccountSid(cfg.AccountSID)
	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
		Client:   c,
	})
	return &WhatsApp{cfg: cfg, rest: rest}
}

func (w *WhatsApp) Name() string { return "whatsapp" }

func (w *WhatsApp) Notify(ranges []meta.GoodTimeRange, s spot.Spot) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(w.cfg.From)
	params.SetTo(w.cfg.To)
	params.SetBody(render(ranges, s, ""))

	if _, err := w.rest.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("sending whatsapp message: %w", err)
	}
	return nil
}
