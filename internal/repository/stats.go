package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type StatsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStatsRepo(db *dbpg.DB) *StatsRepository {
	return &StatsRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *StatsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	query := `SELECT
				(SELECT COUNT(*) FROM tickets) AS total_tickets,
				(SELECT COUNT(*) FROM tickets WHERE status='used') AS used_tickets,
				(SELECT COUNT(*) FROM tickets WHERE status='unused') AS unused_tickets,
				(SELECT COUNT(*) FROM users WHERE role='seller') AS sellers,
				(SELECT COUNT(*) FROM events) AS events,
				(SELECT COUNT(*) FROM events WHERE active=true) AS active_events`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("collect stats: %w", err)
	}

	var s domain.Stats
	if err = row.Scan(
		&s.TotalTickets, &s.UsedTickets, &s.UnusedTickets,
		&s.Sellers, &s.Events, &s.ActiveEvents,
	); err != nil {
		return nil, fmt.Errorf("scan stats: %w", err)
	}

	return &s, nil
}

func (r *StatsRepository) SellerTotals(ctx context.Context, sellerID string) (int, int, error) {
	query := `SELECT COUNT(*),
					 COUNT(*) FILTER (WHERE status='used')
			  FROM tickets
			  WHERE seller_id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, sellerID)
	if err != nil {
		return 0, 0, fmt.Errorf("seller totals: %w", err)
	}

	var total, used int
	if err = row.Scan(&total, &used); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("scan seller totals: %w", err)
	}

	return total, used, nil
}
