package notify

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/spencer-p/surfalert/pkg/meta"
	"github.com/spencer-p/surfalert/pkg/spot"
)

// referenceLink points at the local wind forecast; email bodies carry it so
// the reader can sanity-check the alert.
const referenceLink = "https://www.windguru.cz/47766/"

// EmailConfig configures the email channel.
type EmailConfig struct {
	Host string
	Port int

	// Address is the sender, also used to authenticate against the SMTP host.
	Address  string
	Password string

	To []string
}

// Email delivers alerts over SMTP with STARTTLS.
type Email struct {
	cfg EmailConfig
}

func NewEmail(cfg EmailConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) Name() string { return "email" }

func (e *Email) Notify(ranges []meta.GoodTimeRange, s spot.Spot) error {
	msg := email.NewEmail()
	msg.From = e.cfg.Address
	msg.To = e.cfg.To
	msg.Subject = fmt.Sprintf("🏄 Surf Alert - %s", s.Name)
	msg.Text = []byte(render(ranges, s, referenceLink))

	addr := fmt.Sprintf("%s:%d", e.cfg.Host, e.cfg.Port)
	auth := smtp.PlainAuth("", e.cfg.Address, e.cfg.Password, e.cfg.Host)
	if err := msg.SendWithStartTLS(addr, auth, &tls.Config{ServerName: e.cfg.Host}); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	return nil
}
