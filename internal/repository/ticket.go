package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

// hydratedTicket joins the live event/seller rows back in, preferring
// the denormalized snapshot columns so deleted or edited events never
// change what the ticket said at issuance.
const hydratedTicket = `
	SELECT t.id, t.event_id,
		   COALESCE(NULLIF(t.event_name, ''), e.name, '') AS event_name,
		   COALESCE(NULLIF(t.event_date, ''), e.date, '') AS event_date,
		   COALESCE(NULLIF(t.event_time, ''), e.time, '') AS event_time,
		   COALESCE(NULLIF(t.event_venue, ''), e.venue, '') AS event_venue,
		   t.seller_id, COALESCE(u.name, '') AS seller_name,
		   t.customer_name, t.customer_whatsapp, t.ticket_code, t.qr_png,
		   t.status, t.issued_at, t.scanned_at
	FROM tickets t
	LEFT JOIN events e ON t.event_id = e.id
	LEFT JOIN users u ON t.seller_id = u.id`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanTicket(row interface{ Scan(...any) error }) (*domain.Ticket, error) {
	var t domain.Ticket
	err := row.Scan(
		&t.ID, &t.EventID, &t.EventName, &t.EventDate, &t.EventTime, &t.EventVenue,
		&t.SellerID, &t.SellerName, &t.CustomerName, &t.CustomerWhatsApp,
		&t.TicketCode, &t.QRPNG, &t.Status, &t.IssuedAt, &t.ScannedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Issue inserts the ticket and increments the seller's sold counter in
// one transaction. The seller row is locked first so two issuances
// racing near the quota boundary serialize; the increment itself is
// still conditioned on the ceiling as a second guard.
func (r *TicketRepository) Issue(ctx context.Context, t *domain.Ticket) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var limit, sold int
	lockQuery := `SELECT ticket_limit, tickets_sold FROM users
				  WHERE id=$1 AND role='seller' FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, t.SellerID).Scan(&limit, &sold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSellerNotFound
		}
		return fmt.Errorf("lock seller: %w", err)
	}
	if sold >= limit {
		return domain.ErrQuotaExceeded
	}

	insertQuery := `INSERT INTO tickets (id, event_id, event_name, event_date, event_time, event_venue,
										 seller_id, customer_name, customer_whatsapp, ticket_code, qr_png,
										 status, issued_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		t.ID, t.EventID, t.EventName, t.EventDate, t.EventTime, t.EventVenue,
		t.SellerID, t.CustomerName, t.CustomerWhatsApp, t.TicketCode, t.QRPNG,
		t.Status, t.IssuedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("ticket code collision %q: %w", t.TicketCode, err)
		}
		return fmt.Errorf("insert ticket: %w", err)
	}

	incQuery := `UPDATE users SET tickets_sold = tickets_sold + 1, updated_at = now()
				 WHERE id=$1 AND tickets_sold < ticket_limit`
	res, err := tx.ExecContext(ctx, incQuery, t.SellerID)
	if err != nil {
		return fmt.Errorf("increment tickets_sold: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("increment rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrQuotaExceeded
	}

	return tx.Commit()
}

// Redeem atomically flips unused->used and appends the scan log row.
// The conditional UPDATE serializes concurrent scans of the same code:
// the loser sees zero rows and gets ErrTicketUsed.
func (r *TicketRepository) Redeem(ctx context.Context, code, scannerID string) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var ticketID string
	var scannedAt time.Time
	flipQuery := `UPDATE tickets SET status='used', scanned_at=now()
				  WHERE ticket_code=$1 AND status='unused'
				  RETURNING id, scanned_at`
	err = tx.QueryRowContext(ctx, flipQuery, code).Scan(&ticketID, &scannedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Определяем причину: билет не найден или уже использован
		var status domain.TicketStatus
		checkErr := tx.QueryRowContext(ctx,
			`SELECT status FROM tickets WHERE ticket_code=$1`, code,
		).Scan(&status)
		if checkErr != nil {
			return nil, domain.ErrTicketNotFound
		}
		if status == domain.TicketStatusUsed {
			return nil, domain.ErrTicketUsed
		}
		return nil, domain.ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redeem ticket: %w", err)
	}

	logQuery := `INSERT INTO scan_logs (id, ticket_id, ticket_code, scanner_id, scanned_at)
				 VALUES ($1, $2, $3, $4, $5)`
	if _, err = tx.ExecContext(ctx, logQuery, uuid.New().String(), ticketID, code, scannerID, scannedAt); err != nil {
		return nil, fmt.Errorf("insert scan log: %w", err)
	}

	ticket, err := scanTicket(tx.QueryRowContext(ctx, hydratedTicket+` WHERE t.id=$1`, ticketID))
	if err != nil {
		return nil, fmt.Errorf("hydrate ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit redeem: %w", err)
	}

	return ticket, nil
}

func (r *TicketRepository) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, hydratedTicket+` WHERE t.ticket_code=$1`, code)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	t, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return t, nil
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*domain.Ticket, error) {
	return r.list(ctx, hydratedTicket+` ORDER BY t.issued_at DESC`)
}

func (r *TicketRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Ticket, error) {
	return r.list(ctx, hydratedTicket+` WHERE t.seller_id=$1 ORDER BY t.issued_at DESC`, sellerID)
}

func (r *TicketRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Ticket, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}
