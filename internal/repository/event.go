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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, date, time, venue, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Date, e.Time, e.Venue, e.Active, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, name, date, time, venue, active, created_at, updated_at
			  FROM events
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Name, &e.Date, &e.Time, &e.Venue, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET name=$2, date=$3, time=$4, venue=$5, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Date, e.Time, e.Venue,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) SetActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE events SET active=$2, updated_at=now() WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, active)
	if err != nil {
		return fmt.Errorf("set event active: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// DeleteCascade removes the event, its tickets and those tickets' scan
// logs as one unit. An active event must be deactivated first.
func (r *EventRepository) DeleteCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var active bool
	checkQuery := `SELECT active FROM events WHERE id=$1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, checkQuery, id).Scan(&active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("get event for delete: %w", err)
	}
	if active {
		return domain.ErrEventStillActive
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM scan_logs WHERE ticket_id IN (SELECT id FROM tickets WHERE event_id=$1)`, id,
	); err != nil {
		return fmt.Errorf("delete event scan logs: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM tickets WHERE event_id=$1`, id); err != nil {
		return fmt.Errorf("delete event tickets: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM events WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	return tx.Commit()
}

func (r *EventRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Event, error) {
	query := `SELECT id, name, date, time, venue, active, created_at, updated_at
			  FROM events`
	if activeOnly {
		query += ` WHERE active=true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(
			&e.ID, &e.Name, &e.Date, &e.Time, &e.Venue, &e.Active, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
