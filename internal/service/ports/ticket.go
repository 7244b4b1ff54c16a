package ports

import (
	"context"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type TicketRepo interface {
	// Issue persists the ticket and increments the seller's sold counter
	// in one transaction; the increment is guarded by the quota ceiling.
	Issue(ctx context.Context, t *domain.Ticket) error
	// Redeem flips unused->used, appends the scan log row and returns the
	// hydrated ticket, all in one transaction. Exactly one concurrent
	// caller per code succeeds; the rest observe ErrTicketUsed.
	Redeem(ctx context.Context, code, scannerID string) (*domain.Ticket, error)
	GetByCode(ctx context.Context, code string) (*domain.Ticket, error)
	ListAll(ctx context.Context) ([]*domain.Ticket, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Ticket, error)
}

type ScanLogRepo interface {
	Recent(ctx context.Context, limit int) ([]*domain.ScanLogEntry, error)
}
