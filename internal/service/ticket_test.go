package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports/mocks"
)

type ticketMocks struct {
	tickets  *mocks.MockTicketRepo
	users    *mocks.MockUserRepo
	events   *mocks.MockEventRepo
	notifier *mocks.MockNotifier
}

func newTicketService(t *testing.T) (ticketMocks, *TicketService) {
	t.Helper()
	m := ticketMocks{
		tickets:  mocks.NewMockTicketRepo(t),
		users:    mocks.NewMockUserRepo(t),
		events:   mocks.NewMockEventRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
	svc := NewTicketService(m.tickets, m.users, m.events, m.notifier, newTestLogger(t))
	return m, svc
}

func activeSeller() *domain.User {
	return &domain.User{
		ID:          "s1",
		Name:        "Alice",
		Role:        domain.RoleSeller,
		Approved:    true,
		TicketLimit: 2,
	}
}

func activeEvent() *domain.Event {
	return &domain.Event{
		ID:     "e1",
		Name:   "Summer Party",
		Date:   "2026-09-01",
		Time:   "21:00",
		Venue:  "Warehouse 12",
		Active: true,
	}
}

func issueInput() domain.IssueTicketInput {
	return domain.IssueTicketInput{
		EventID:          "e1",
		SellerID:         "s1",
		CustomerName:     "Bob",
		CustomerWhatsApp: "+1987654321",
	}
}

func TestTicketService_Issue_Success(t *testing.T) {
	m, svc := newTicketService(t)

	report := domain.Report{Email: domain.OutcomeSkipped, WhatsApp: domain.OutcomeSent}

	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(activeSeller(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	m.tickets.EXPECT().Issue(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything).Return(report)

	issued, err := svc.Issue(context.Background(), issueInput())

	require.NoError(t, err)
	ticket := issued.Ticket
	assert.True(t, strings.HasPrefix(ticket.TicketCode, "PP-"))
	assert.Equal(t, domain.TicketStatusUnused, ticket.Status)
	assert.NotEmpty(t, ticket.QRPNG, "qr image must be rendered at issuance")
	assert.Equal(t, report, issued.Delivery)

	// Снапшот события фиксируется в момент выпуска.
	assert.Equal(t, "Summer Party", ticket.EventName)
	assert.Equal(t, "2026-09-01", ticket.EventDate)
	assert.Equal(t, "21:00", ticket.EventTime)
	assert.Equal(t, "Warehouse 12", ticket.EventVenue)
	assert.Equal(t, "Alice", ticket.SellerName)
}

func TestTicketService_Issue_MissingFields(t *testing.T) {
	_, svc := newTicketService(t)

	_, err := svc.Issue(context.Background(), domain.IssueTicketInput{EventID: "e1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Issue_SuspendedSeller(t *testing.T) {
	m, svc := newTicketService(t)

	seller := activeSeller()
	seller.Suspended = true
	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(seller, nil)

	_, err := svc.Issue(context.Background(), issueInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSellerSuspended)
}

func TestTicketService_Issue_UnapprovedSeller(t *testing.T) {
	m, svc := newTicketService(t)

	seller := activeSeller()
	seller.Approved = false
	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(seller, nil)

	_, err := svc.Issue(context.Background(), issueInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSellerNotApproved)
}

func TestTicketService_Issue_QuotaReached(t *testing.T) {
	m, svc := newTicketService(t)

	seller := activeSeller()
	seller.TicketsSold = seller.TicketLimit
	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(seller, nil)

	_, err := svc.Issue(context.Background(), issueInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestTicketService_Issue_InactiveEvent(t *testing.T) {
	m, svc := newTicketService(t)

	event := activeEvent()
	event.Active = false

	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(activeSeller(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	_, err := svc.Issue(context.Background(), issueInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventInactive)
}

func TestTicketService_Issue_QuotaRaceLostAtStore(t *testing.T) {
	m, svc := newTicketService(t)

	// Предпроверка прошла, но транзакция проиграла гонку за лимит.
	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(activeSeller(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(activeEvent(), nil)
	m.tickets.EXPECT().Issue(mock.Anything, mock.Anything).Return(domain.ErrQuotaExceeded)

	_, err := svc.Issue(context.Background(), issueInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestTicketService_Issue_EventNotFound(t *testing.T) {
	m, svc := newTicketService(t)

	m.users.EXPECT().GetSeller(mock.Anything, "s1").Return(activeSeller(), nil)
	m.events.EXPECT().GetByID(mock.Anything, "e1").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Issue(context.Background(), issueInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTicketService_GetByCode_Blank(t *testing.T) {
	_, svc := newTicketService(t)

	_, err := svc.GetByCode(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNewTicketCode_Distinct(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		code, err := newTicketCode()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(code, "PP-"))
		_, dup := seen[code]
		assert.False(t, dup, "duplicate code %s", code)
		seen[code] = struct{}{}
	}
}
