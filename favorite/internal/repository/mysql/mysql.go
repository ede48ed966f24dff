package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abhishek622/streetsmart/favorite/internal/repository"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
	"github.com/abhishek622/streetsmart/internal/sqlutil"
	"github.com/go-sql-driver/mysql"
)

const errDuplicateEntry = 1062

// Repository defines a MySQL-based favorite repository.
//
// Schema:
//
//	CREATE TABLE favorites (
//	    id         VARCHAR(36) PRIMARY KEY,
//	    user_id    VARCHAR(36) NOT NULL,
//	    shop_id    VARCHAR(36) NOT NULL,
//	    created_at DATETIME(6) NOT NULL,
//	    UNIQUE KEY favorites_user_shop (user_id, shop_id)
//	);
type Repository struct {
	db *sql.DB
}

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

// Put stores a favorite. The unique (user_id, shop_id) key turns a second
// favorite for the same pair into repository.ErrConflict.
func (r *Repository) Put(ctx context.Context, f *model.Favorite) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO favorites (id, user_id, shop_id, created_at) VALUES (?, ?, ?, ?)",
		f.ID, f.UserID, f.ShopID, f.CreatedAt)
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return repository.ErrConflict
	}
	return err
}

// DeleteByPair removes the favorite of userID for shopID.
func (r *Repository) DeleteByPair(ctx context.Context, userID, shopID string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM favorites WHERE user_id = ? AND shop_id = ?", userID, shopID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Exists reports whether userID has shopID as favorite.
func (r *Repository) Exists(ctx context.Context, userID, shopID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = ? AND shop_id = ?)", userID, shopID).Scan(&exists)
	return exists, err
}

// ListByUser returns the favorites of a user, oldest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*model.Favorite, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, shop_id, created_at FROM favorites WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ShopID, &f.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &f)
	}
	return res, rows.Err()
}
