package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type ScanLogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScanLogRepo(db *dbpg.DB) *ScanLogRepository {
	return &ScanLogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ScanLogRepository) Recent(ctx context.Context, limit int) ([]*domain.ScanLogEntry, error) {
	query := `SELECT l.id, l.ticket_code, l.scanned_at,
					 COALESCE(t.customer_name, '') AS customer_name,
					 COALESCE(t.customer_whatsapp, '') AS customer_whatsapp,
					 COALESCE(t.issued_at, l.scanned_at) AS issued_at,
					 COALESCE(NULLIF(t.event_name, ''), e.name, '') AS event_name,
					 COALESCE(u.name, '') AS seller_name
			  FROM scan_logs l
			  LEFT JOIN tickets t ON l.ticket_id = t.id
			  LEFT JOIN events e ON t.event_id = e.id
			  LEFT JOIN users u ON t.seller_id = u.id
			  ORDER BY l.scanned_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list scan logs: %w", err)
	}
	defer rows.Close()

	var res []*domain.ScanLogEntry
	for rows.Next() {
		var s domain.ScanLogEntry
		if err = rows.Scan(
			&s.ID, &s.TicketCode, &s.ScannedAt,
			&s.CustomerName, &s.CustomerWhatsApp, &s.IssuedAt,
			&s.EventName, &s.SellerName,
		); err != nil {
			return nil, fmt.Errorf("scan log row: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}
