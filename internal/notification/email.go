package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/domodwyer/mailyak/v3"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/config"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type EmailChannel struct {
	cfg config.SMTPConfig
}

func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	return &EmailChannel{cfg: cfg}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Send(ctx context.Context, msg Message) domain.Outcome {
	if msg.Email == "" {
		return domain.OutcomeMissingContact
	}
	if err := ctx.Err(); err != nil {
		return domain.OutcomeFailed(err)
	}

	mail := mailyak.New(
		fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port),
		smtp.PlainAuth("", c.cfg.User, c.cfg.Pass, c.cfg.Host),
	)
	mail.From(c.cfg.From)
	mail.To(msg.Email)
	mail.Subject(msg.Subject)
	mail.Plain().Set(msg.Body)

	if err := mail.Send(); err != nil {
		return domain.OutcomeFailed(err)
	}

	return domain.OutcomeSent
}
