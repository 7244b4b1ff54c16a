package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports/mocks"
)

func newStatsService(t *testing.T) (*mocks.MockStatsRepo, *mocks.MockScanLogRepo, *mocks.MockAuditRepo, *mocks.MockUserRepo, *StatsService) {
	t.Helper()
	stats := mocks.NewMockStatsRepo(t)
	scanLogs := mocks.NewMockScanLogRepo(t)
	audit := mocks.NewMockAuditRepo(t)
	users := mocks.NewMockUserRepo(t)
	return stats, scanLogs, audit, users, NewStatsService(stats, scanLogs, audit, users)
}

func TestStatsService_Overview(t *testing.T) {
	stats, _, _, _, svc := newStatsService(t)

	expected := &domain.Stats{TotalTickets: 10, UsedTickets: 4, UnusedTickets: 6, Sellers: 3, Events: 2, ActiveEvents: 1}
	stats.EXPECT().Collect(mock.Anything).Return(expected, nil)

	got, err := svc.Overview(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestStatsService_RecentScans_DefaultLimit(t *testing.T) {
	_, scanLogs, _, _, svc := newStatsService(t)

	scanLogs.EXPECT().Recent(mock.Anything, defaultRecentLimit).Return(nil, nil)

	_, err := svc.RecentScans(context.Background(), 0)

	require.NoError(t, err)
}

func TestStatsService_RecentAudit_LimitClamped(t *testing.T) {
	_, _, audit, _, svc := newStatsService(t)

	audit.EXPECT().Recent(mock.Anything, maxRecentLimit).Return(nil, nil)

	_, err := svc.RecentAudit(context.Background(), 5000)

	require.NoError(t, err)
}

func TestStatsService_SellerSummary(t *testing.T) {
	stats, _, _, users, svc := newStatsService(t)

	seller := &domain.User{ID: "s1", Role: domain.RoleSeller, TicketLimit: 10, TicketsSold: 7}
	users.EXPECT().GetSeller(mock.Anything, "s1").Return(seller, nil)
	stats.EXPECT().SellerTotals(mock.Anything, "s1").Return(7, 3, nil)

	summary, err := svc.SellerSummary(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 3, summary.Used)
	assert.Equal(t, 3, summary.Remaining)
	assert.Equal(t, 10, summary.Limit)
	assert.Equal(t, 7, summary.Sold)
}

func TestStatsService_SellerSummary_RemainingNeverNegative(t *testing.T) {
	stats, _, _, users, svc := newStatsService(t)

	// Лимит опущен ниже проданного историческими данными.
	seller := &domain.User{ID: "s1", Role: domain.RoleSeller, TicketLimit: 5, TicketsSold: 7}
	users.EXPECT().GetSeller(mock.Anything, "s1").Return(seller, nil)
	stats.EXPECT().SellerTotals(mock.Anything, "s1").Return(7, 0, nil)

	summary, err := svc.SellerSummary(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Remaining)
}

func TestStatsService_SellerSummary_NotFound(t *testing.T) {
	_, _, _, users, svc := newStatsService(t)

	users.EXPECT().GetSeller(mock.Anything, "missing").Return(nil, domain.ErrSellerNotFound)

	_, err := svc.SellerSummary(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSellerNotFound)
}
