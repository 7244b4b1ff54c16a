package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/service/ports/mocks"
)

func TestScanService_Redeem_Success(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewScanService(repo, newTestLogger(t))

	now := time.Now()
	redeemed := &domain.Ticket{
		ID:         "t1",
		EventID:    "e1",
		TicketCode: "PP-abc-112233",
		Status:     domain.TicketStatusUsed,
		ScannedAt:  &now,
	}
	repo.EXPECT().Redeem(mock.Anything, "PP-abc-112233", "admin").Return(redeemed, nil)

	ticket, err := svc.Redeem(context.Background(), "PP-abc-112233", "admin")

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusUsed, ticket.Status)
	assert.NotNil(t, ticket.ScannedAt)
}

func TestScanService_Redeem_BlankCode(t *testing.T) {
	svc := NewScanService(nil, newTestLogger(t))

	_, err := svc.Redeem(context.Background(), "", "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScanService_Redeem_AlreadyUsed(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewScanService(repo, newTestLogger(t))

	repo.EXPECT().Redeem(mock.Anything, "PP-abc-112233", "admin").Return(nil, domain.ErrTicketUsed)

	_, err := svc.Redeem(context.Background(), "PP-abc-112233", "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketUsed)
}

func TestScanService_Redeem_NotFound(t *testing.T) {
	repo := mocks.NewMockTicketRepo(t)
	svc := NewScanService(repo, newTestLogger(t))

	repo.EXPECT().Redeem(mock.Anything, "PP-nope", "admin").Return(nil, domain.ErrTicketNotFound)

	_, err := svc.Redeem(context.Background(), "PP-nope", "admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketNotFound)
}
