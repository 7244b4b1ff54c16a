package service

import (
	"context"
	"fmt"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports"
)

const (
	defaultRecentLimit = 50
	maxRecentLimit     = 200
)

// StatsService is the read side: dashboard rollups over tickets,
// sellers, events, scans and audit entries. No write side effects.
type StatsService struct {
	stats    ports.StatsRepo
	scanLogs ports.ScanLogRepo
	audit    ports.AuditRepo
	users    ports.UserRepo
}

func NewStatsService(
	stats ports.StatsRepo,
	scanLogs ports.ScanLogRepo,
	audit ports.AuditRepo,
	users ports.UserRepo,
) *StatsService {
	return &StatsService{
		stats:    stats,
		scanLogs: scanLogs,
		audit:    audit,
		users:    users,
	}
}

func (s *StatsService) Overview(ctx context.Context) (*domain.Stats, error) {
	return s.stats.Collect(ctx)
}

func (s *StatsService) RecentScans(ctx context.Context, limit int) ([]*domain.ScanLogEntry, error) {
	return s.scanLogs.Recent(ctx, clampLimit(limit))
}

func (s *StatsService) RecentAudit(ctx context.Context, limit int) ([]*domain.AuditLog, error) {
	return s.audit.Recent(ctx, clampLimit(limit))
}

func (s *StatsService) SellerSummary(ctx context.Context, sellerID string) (*domain.SellerSummary, error) {
	seller, err := s.users.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}

	total, used, err := s.stats.SellerTotals(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("seller totals: %w", err)
	}

	remaining := seller.TicketLimit - seller.TicketsSold
	if remaining < 0 {
		remaining = 0
	}

	return &domain.SellerSummary{
		Total:     total,
		Used:      used,
		Remaining: remaining,
		Limit:     seller.TicketLimit,
		Sold:      seller.TicketsSold,
	}, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultRecentLimit
	}
	if limit > maxRecentLimit {
		return maxRecentLimit
	}
	return limit
}
