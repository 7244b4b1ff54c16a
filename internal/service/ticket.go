package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/monitoring"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/qr"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports"
)

type TicketService struct {
	tickets  ports.TicketRepo
	users    ports.UserRepo
	events   ports.EventRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewTicketService(
	tickets ports.TicketRepo,
	users ports.UserRepo,
	events ports.EventRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		tickets:  tickets,
		users:    users,
		events:   events,
		notifier: notifier,
		logger:   logger,
	}
}

// newTicketCode mints a collision-resistant human-shareable code:
// a millisecond timestamp in base36 plus a random hex suffix. The
// unique index on ticket_code is the backstop.
func newTicketCode() (string, error) {
	var suffix [3]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", fmt.Errorf("random suffix: %w", err)
	}
	return fmt.Sprintf("PP-%s-%s",
		strconv.FormatInt(time.Now().UnixMilli(), 36),
		hex.EncodeToString(suffix[:]),
	), nil
}

// Issue runs the issuance pipeline: seller eligibility, quota, event
// gate, code + QR mint, transactional persist with counter increment,
// then best-effort customer notification.
func (s *TicketService) Issue(ctx context.Context, input domain.IssueTicketInput) (*domain.IssuedTicket, error) {
	if input.EventID == "" || input.CustomerName == "" || input.CustomerWhatsApp == "" {
		return nil, fmt.Errorf("%w: all fields are required", domain.ErrValidation)
	}

	seller, err := s.users.GetSeller(ctx, input.SellerID)
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	if seller.Suspended {
		return nil, domain.ErrSellerSuspended
	}
	if !seller.Approved {
		return nil, domain.ErrSellerNotApproved
	}
	if seller.TicketsSold >= seller.TicketLimit {
		return nil, domain.ErrQuotaExceeded
	}

	event, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !event.Active {
		return nil, domain.ErrEventInactive
	}

	code, err := newTicketCode()
	if err != nil {
		return nil, fmt.Errorf("mint ticket code: %w", err)
	}
	png, err := qr.EncodePNG(code)
	if err != nil {
		return nil, fmt.Errorf("render qr: %w", err)
	}

	ticket := &domain.Ticket{
		ID:               uuid.New().String(),
		EventID:          event.ID,
		EventName:        event.Name,
		EventDate:        event.Date,
		EventTime:        event.Time,
		EventVenue:       event.Venue,
		SellerID:         seller.ID,
		SellerName:       seller.Name,
		CustomerName:     input.CustomerName,
		CustomerWhatsApp: input.CustomerWhatsApp,
		TicketCode:       code,
		QRPNG:            png,
		Status:           domain.TicketStatusUnused,
		IssuedAt:         time.Now().UTC(),
	}
	if err := s.tickets.Issue(ctx, ticket); err != nil {
		return nil, fmt.Errorf("issue ticket: %w", err)
	}

	monitoring.TrackTicketIssued(event.ID)
	s.logger.Info("ticket issued",
		logger.String("ticket_code", code),
		logger.String("event_id", event.ID),
		logger.String("seller_id", seller.ID),
	)

	// Delivery outcome travels back to the caller but never unwinds the
	// ticket that was just committed.
	delivery := s.notifier.NotifyTicketIssued(ctx, ticket)

	return &domain.IssuedTicket{Ticket: ticket, Delivery: delivery}, nil
}

func (s *TicketService) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: ticket code is required", domain.ErrValidation)
	}
	return s.tickets.GetByCode(ctx, code)
}

func (s *TicketService) ListAll(ctx context.Context) ([]*domain.Ticket, error) {
	return s.tickets.ListAll(ctx)
}

func (s *TicketService) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Ticket, error) {
	return s.tickets.ListBySeller(ctx, sellerID)
}
