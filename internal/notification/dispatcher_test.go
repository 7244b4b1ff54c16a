package notification

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/config"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// stubChannel записывает последнее сообщение и отдаёт фиксированный исход.
type stubChannel struct {
	name    string
	outcome domain.Outcome
	last    Message
}

func (s *stubChannel) Name() string { return s.name }

func (s *stubChannel) Send(_ context.Context, msg Message) domain.Outcome {
	s.last = msg
	return s.outcome
}

// blockingChannel имитирует зависший транспорт: игнорирует контекст и
// спит дольше любого разумного таймаута.
type blockingChannel struct {
	delay time.Duration
}

func (b *blockingChannel) Name() string { return "email" }

func (b *blockingChannel) Send(_ context.Context, _ Message) domain.Outcome {
	time.Sleep(b.delay)
	return domain.OutcomeSent
}

func unconfiguredDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(config.NotifyConfig{Timeout: time.Second}, newTestLogger(t))
}

func TestDispatcher_UnconfiguredChannelsReportNotConfigured(t *testing.T) {
	d := unconfiguredDispatcher(t)

	seller := &domain.User{Name: "Alice", Email: "alice@example.com", WhatsApp: "+1234567890"}
	report := d.NotifyApproval(context.Background(), seller)

	assert.Equal(t, domain.OutcomeNotConfigured, report.Email)
	assert.Equal(t, domain.OutcomeNotConfigured, report.WhatsApp)
}

func TestDispatcher_TicketMessageSkipsEmail(t *testing.T) {
	d := unconfiguredDispatcher(t)

	ticket := &domain.Ticket{TicketCode: "PP-abc-112233", EventName: "Summer Party"}
	report := d.NotifyTicketIssued(context.Background(), ticket)

	assert.Equal(t, domain.OutcomeSkipped, report.Email)
	assert.Equal(t, domain.OutcomeNotConfigured, report.WhatsApp)
}

func TestDispatcher_TicketMessageCarriesPublicURLs(t *testing.T) {
	d := unconfiguredDispatcher(t)
	d.baseURL = "https://pass.example.com"

	wa := &stubChannel{name: "whatsapp", outcome: domain.OutcomeSent}
	d.whatsapp = wa

	ticket := &domain.Ticket{
		TicketCode:       "PP-abc-112233",
		EventName:        "Summer Party",
		CustomerWhatsApp: "+1987654321",
	}
	report := d.NotifyTicketIssued(context.Background(), ticket)

	assert.Equal(t, domain.OutcomeSent, report.WhatsApp)
	assert.Contains(t, wa.last.Body, "View: https://pass.example.com/ticket/view/PP-abc-112233")
	assert.Equal(t, "https://pass.example.com/api/tickets/PP-abc-112233/qr.png", wa.last.MediaURL)
}

func TestDispatcher_ApprovalFansOutToBothChannels(t *testing.T) {
	d := unconfiguredDispatcher(t)

	email := &stubChannel{name: "email", outcome: domain.OutcomeSent}
	wa := &stubChannel{name: "whatsapp", outcome: domain.OutcomeMissingContact}
	d.email = email
	d.whatsapp = wa

	seller := &domain.User{Name: "Alice", Email: "alice@example.com"}
	report := d.NotifyApproval(context.Background(), seller)

	assert.Equal(t, domain.OutcomeSent, report.Email)
	assert.Equal(t, domain.OutcomeMissingContact, report.WhatsApp)
	assert.Equal(t, "alice@example.com", email.last.Email)
	assert.Contains(t, email.last.Body, "Alice")
}

func TestDispatcher_StalledChannelReturnsWithinTimeout(t *testing.T) {
	d := unconfiguredDispatcher(t)
	d.timeout = 50 * time.Millisecond
	d.email = &blockingChannel{delay: 5 * time.Second}
	d.whatsapp = &stubChannel{name: "whatsapp", outcome: domain.OutcomeSent}

	seller := &domain.User{Name: "Alice", Email: "alice@example.com", WhatsApp: "+1234567890"}

	start := time.Now()
	report := d.NotifyApproval(context.Background(), seller)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, time.Second)
	assert.Equal(t, domain.OutcomeFailed(context.DeadlineExceeded), report.Email)
	assert.Equal(t, domain.OutcomeSent, report.WhatsApp)
}

func TestOutcomeFailed_CarriesReason(t *testing.T) {
	outcome := domain.OutcomeFailed(assert.AnError)

	assert.True(t, strings.HasPrefix(string(outcome), "failed: "))
}

func TestNormalizeWhatsApp(t *testing.T) {
	assert.Equal(t, "", normalizeWhatsApp(""))
	assert.Equal(t, "whatsapp:+123", normalizeWhatsApp("+123"))
	assert.Equal(t, "whatsapp:+123", normalizeWhatsApp("whatsapp:+123"))
}
