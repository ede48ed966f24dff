package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abhishek622/streetsmart/approval/internal/repository"
	"github.com/abhishek622/streetsmart/approval/pkg/model"
	"github.com/abhishek622/streetsmart/internal/sqlutil"
	"github.com/go-sql-driver/mysql"
)

// Repository defines a MySQL-based approval repository.
//
// Schema:
//
//	CREATE TABLE approvals (
//	    id         VARCHAR(36) PRIMARY KEY,
//	    shop_id    VARCHAR(36) NOT NULL UNIQUE,
//	    status     VARCHAR(16) NOT NULL,
//	    approved   BOOLEAN NOT NULL DEFAULT FALSE,
//	    reason     TEXT NOT NULL,
//	    created_at DATETIME(6) NOT NULL,
//	    updated_at DATETIME(6) NOT NULL,
//	    INDEX (status, created_at)
//	);
type Repository struct {
	db *sql.DB
}

const (
	columns          = "id, shop_id, status, approved, reason, created_at, updated_at"
	errDuplicateKey  = 1062
	statusPendingArg = string(model.StatusPending)
)

// New creates a new MySQL-based repository.
func New(db *sql.DB) *Repository {
	return &Repository{db}
}

// Open connects to the database at dsn.
func Open(dsn string) (*Repository, error) {
	db, err := sqlutil.Open(dsn)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// Close closes the underlying connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*model.Approval, error) {
	var a model.Approval
	if err := row.Scan(&a.ID, &a.ShopID, &a.Status, &a.Approved, &a.Reason, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Get retrieves the approval of a shop.
func (r *Repository) Get(ctx context.Context, shopID string) (*model.Approval, error) {
	a, err := scan(r.db.QueryRowContext(ctx, "SELECT "+columns+" FROM approvals WHERE shop_id = ?", shopID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return a, err
}

// Put stores a new approval. A second approval for the same shop is a conflict.
func (r *Repository) Put(ctx context.Context, a *model.Approval) error {
	_, err := r.db.ExecContext(ctx, "INSERT INTO approvals ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		a.ID, a.ShopID, a.Status, a.Approved, a.Reason, a.CreatedAt, a.UpdatedAt)
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == errDuplicateKey {
		return repository.ErrConflict
	}
	return err
}

// Decide stores the outcome of a pending approval. The update only applies
// while the row is still PENDING.
func (r *Repository) Decide(ctx context.Context, a *model.Approval) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE approvals SET status = ?, approved = ?, reason = ?, updated_at = ? WHERE shop_id = ? AND status = ?",
		a.Status, a.Approved, a.Reason, a.UpdatedAt, a.ShopID, statusPendingArg)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	var exists bool
	if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM approvals WHERE shop_id = ?)", a.ShopID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return repository.ErrNotFound
	}
	return repository.ErrNotPending
}

// ListPending returns the pending approvals, oldest first.
func (r *Repository) ListPending(ctx context.Context) ([]*model.Approval, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columns+" FROM approvals WHERE status = ? ORDER BY created_at", statusPendingArg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Approval
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

// CountPending returns the number of pending approvals.
func (r *Repository) CountPending(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM approvals WHERE status = ?", statusPendingArg).Scan(&n)
	return n, err
}
