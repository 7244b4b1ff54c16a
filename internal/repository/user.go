package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/galaxyentertainmentjo-sketch/PartyPass/internal/domain"
)

const userColumns = `id, name, email, password, role, ticket_limit, tickets_sold,
					 approved, suspended, whatsapp, phone, avatar_url, created_at, updated_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.TicketLimit, &u.TicketsSold,
		&u.Approved, &u.Suspended, &u.WhatsApp, &u.Phone, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, password, role, ticket_limit, tickets_sold,
								 approved, suspended, whatsapp, phone, avatar_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.Email, user.Password, user.Role,
		user.TicketLimit, user.TicketsSold, user.Approved, user.Suspended,
		user.WhatsApp, user.Phone, user.AvatarURL, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) GetSeller(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1 AND role='seller'`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSellerNotFound
		}
		return nil, fmt.Errorf("scan seller: %w", err)
	}

	return u, nil
}

func (r *UserRepository) ListSellers(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role='seller' ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func (r *UserRepository) HasAdmin(ctx context.Context) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE role='admin')`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan admin check: %w", err)
	}

	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
			  SET name=$2, whatsapp=$3, phone=$4, avatar_url=$5, updated_at=now()
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Name, user.WhatsApp, user.Phone, user.AvatarURL,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashed string) error {
	query := `UPDATE users SET password=$2, updated_at=now() WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, hashed)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("password rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	return r.setSellerFlag(ctx, `UPDATE users SET approved=$2, updated_at=now() WHERE id=$1 AND role='seller'`, id, approved)
}

func (r *UserRepository) SetSuspended(ctx context.Context, id string, suspended bool) error {
	return r.setSellerFlag(ctx, `UPDATE users SET suspended=$2, updated_at=now() WHERE id=$1 AND role='seller'`, id, suspended)
}

func (r *UserRepository) setSellerFlag(ctx context.Context, query, id string, value bool) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, value)
	if err != nil {
		return fmt.Errorf("set seller flag: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("seller flag rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSellerNotFound
	}

	return nil
}

// SetTicketLimit refuses to move the ceiling below the tickets already
// sold; the guard and the write are one statement so a concurrent
// issuance cannot slip between them.
func (r *UserRepository) SetTicketLimit(ctx context.Context, id string, limit int) error {
	query := `UPDATE users SET ticket_limit=$2, updated_at=now()
			  WHERE id=$1 AND role='seller' AND tickets_sold <= $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, limit)
	if err != nil {
		return fmt.Errorf("set ticket limit: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("limit rows affected: %w", err)
	}
	if rows == 0 {
		// Определяем причину: продавец не найден или лимит ниже проданного
		checkQuery := `SELECT tickets_sold FROM users WHERE id=$1 AND role='seller'`
		row, err := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if err != nil {
			return fmt.Errorf("check seller: %w", err)
		}
		var sold int
		if scanErr := row.Scan(&sold); scanErr != nil {
			return domain.ErrSellerNotFound
		}
		if sold > limit {
			return domain.ErrLimitBelowSold
		}
		return domain.ErrSellerNotFound
	}

	return nil
}

// DeleteSellerCascade removes the seller, their tickets and those
// tickets' scan logs as one unit.
func (r *UserRepository) DeleteSellerCascade(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var suspended bool
	checkQuery := `SELECT suspended FROM users WHERE id=$1 AND role='seller' FOR UPDATE`
	if err = tx.QueryRowContext(ctx, checkQuery, id).Scan(&suspended); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSellerNotFound
		}
		return fmt.Errorf("get seller for delete: %w", err)
	}
	if !suspended {
		return domain.ErrSellerNotSusp
	}

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM scan_logs WHERE ticket_id IN (SELECT id FROM tickets WHERE seller_id=$1)`, id,
	); err != nil {
		return fmt.Errorf("delete seller scan logs: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM tickets WHERE seller_id=$1`, id); err != nil {
		return fmt.Errorf("delete seller tickets: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}

	return tx.Commit()
}
