package service

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/monitoring"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports"
)

type ScanService struct {
	tickets ports.TicketRepo
	logger  logger.Logger
}

func NewScanService(tickets ports.TicketRepo, logger logger.Logger) *ScanService {
	return &ScanService{
		tickets: tickets,
		logger:  logger,
	}
}

// Redeem marks a ticket used exactly once. The unused->used transition
// and the scan log append are one storage transaction; a second scan of
// the same code surfaces ErrTicketUsed.
func (s *ScanService) Redeem(ctx context.Context, code, scannerID string) (*domain.Ticket, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: ticket code is required", domain.ErrValidation)
	}

	ticket, err := s.tickets.Redeem(ctx, code, scannerID)
	if err != nil {
		return nil, fmt.Errorf("redeem ticket: %w", err)
	}

	monitoring.TrackTicketRedeemed(ticket.EventID)
	s.logger.Info("ticket redeemed",
		logger.String("ticket_code", code),
		logger.String("scanner_id", scannerID),
	)

	return ticket, nil
}
