package ports

import (
	"context"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type AuditRepo interface {
	Append(ctx context.Context, entry *domain.AuditLog) error
	Recent(ctx context.Context, limit int) ([]*domain.AuditLog, error)
}

type StatsRepo interface {
	Collect(ctx context.Context) (*domain.Stats, error)
	SellerTotals(ctx context.Context, sellerID string) (total, used int, err error)
}
