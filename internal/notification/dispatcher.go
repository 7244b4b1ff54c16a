package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/config"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/monitoring"
)

// Dispatcher fans a message out to the email and whatsapp channels and
// collects a per-channel report. Channels missing configuration are the
// Disabled variant, chosen once at construction.
type Dispatcher struct {
	email    Channel
	whatsapp Channel
	timeout  time.Duration
	baseURL  string
	logger   logger.Logger
}

func NewDispatcher(cfg config.NotifyConfig, log logger.Logger) *Dispatcher {
	var email Channel = NewDisabled("email")
	if cfg.SMTP.Configured() {
		email = NewEmailChannel(cfg.SMTP)
	} else {
		log.Warn("smtp is not configured, email notifications disabled")
	}

	var whatsapp Channel = NewDisabled("whatsapp")
	if cfg.Twilio.Configured() {
		whatsapp = NewWhatsAppChannel(cfg.Twilio, cfg.Timeout)
	} else {
		log.Warn("twilio is not configured, whatsapp notifications disabled")
	}

	return &Dispatcher{
		email:    email,
		whatsapp: whatsapp,
		timeout:  cfg.Timeout,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:   log,
	}
}

func (d *Dispatcher) NotifyApproval(ctx context.Context, seller *domain.User) domain.Report {
	body := fmt.Sprintf(
		"Hi %s, your PartyPass seller account is approved. You can now log in and generate tickets.",
		seller.Name,
	)
	msg := Message{
		Subject:  "PartyPass Seller Approved",
		Body:     body,
		Email:    seller.Email,
		WhatsApp: seller.WhatsApp,
	}

	return d.dispatch(ctx, msg)
}

func (d *Dispatcher) NotifyTicketIssued(ctx context.Context, ticket *domain.Ticket) domain.Report {
	lines := []string{
		"PartyPass Ticket",
		"Event: " + ticket.EventName,
		fmt.Sprintf("Date: %s %s", ticket.EventDate, ticket.EventTime),
		"Venue: " + ticket.EventVenue,
		"Ticket: " + ticket.TicketCode,
	}

	var mediaURL string
	if d.baseURL != "" {
		lines = append(lines, "View: "+d.baseURL+"/ticket/view/"+ticket.TicketCode)
		mediaURL = d.baseURL + "/api/tickets/" + ticket.TicketCode + "/qr.png"
	}

	msg := Message{
		Body:     strings.Join(lines, "\n"),
		WhatsApp: ticket.CustomerWhatsApp,
		MediaURL: mediaURL,
	}

	// Customers have no email handle on file; only the whatsapp channel
	// carries ticket messages.
	report := domain.Report{Email: domain.OutcomeSkipped}
	report.WhatsApp = d.send(ctx, d.whatsapp, msg)
	return report
}

func (d *Dispatcher) dispatch(ctx context.Context, msg Message) domain.Report {
	return domain.Report{
		Email:    d.send(ctx, d.email, msg),
		WhatsApp: d.send(ctx, d.whatsapp, msg),
	}
}

func (d *Dispatcher) send(ctx context.Context, ch Channel, msg Message) domain.Outcome {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	// Транспорты (smtp, twilio) блокируются без собственного дедлайна,
	// границу времени держит диспетчер
	done := make(chan domain.Outcome, 1)
	go func() {
		done <- ch.Send(sendCtx, msg)
	}()

	var outcome domain.Outcome
	select {
	case outcome = <-done:
	case <-sendCtx.Done():
		outcome = domain.OutcomeFailed(sendCtx.Err())
	}
	monitoring.TrackNotification(ch.Name(), outcome)

	if outcome != domain.OutcomeSent {
		d.logger.Debug("notification not delivered",
			logger.String("channel", ch.Name()),
			logger.String("outcome", string(outcome)),
		)
	}

	return outcome
}
