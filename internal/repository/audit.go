package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

type AuditRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAuditRepo(db *dbpg.DB) *AuditRepository {
	return &AuditRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditLog) error {
	query := `INSERT INTO audit_logs (id, actor_id, action, target_type, target_id, details, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		entry.ID, entry.ActorID, entry.Action, entry.TargetType, entry.TargetID,
		entry.Details, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}

	return nil
}

func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]*domain.AuditLog, error) {
	query := `SELECT id, actor_id, action, target_type, target_id, details, created_at
			  FROM audit_logs
			  ORDER BY created_at DESC
			  LIMIT $1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var res []*domain.AuditLog
	for rows.Next() {
		var a domain.AuditLog
		if err = rows.Scan(
			&a.ID, &a.ActorID, &a.Action, &a.TargetType, &a.TargetID, &a.Details, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
