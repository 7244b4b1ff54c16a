package notification

import (
	"context"
	"time"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/config"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type WhatsAppChannel struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsAppChannel(cfg config.TwilioConfig, timeout time.Duration) *WhatsAppChannel {
	rc := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	rc.Client.SetTimeout(timeout)
	return &WhatsAppChannel{
		client: rc,
		from:   normalizeWhatsApp(cfg.WhatsAppFrom),
	}
}

func (c *WhatsAppChannel) Name() string { return "whatsapp" }

func (c *WhatsAppChannel) Send(ctx context.Context, msg Message) domain.Outcome {
	if msg.WhatsApp == "" {
		return domain.OutcomeMissingContact
	}
	if err := ctx.Err(); err != nil {
		return domain.OutcomeFailed(err)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(c.from)
	params.SetTo(normalizeWhatsApp(msg.WhatsApp))
	params.SetBody(msg.Body)
	if msg.MediaURL != "" {
		params.SetMediaUrl([]string{msg.MediaURL})
	}

	if _, err := c.client.Api.CreateMessage(params); err != nil {
		return domain.OutcomeFailed(err)
	}

	return domain.OutcomeSent
}
