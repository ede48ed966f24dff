package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhishek622/streetsmart/internal/sqlutil"
	"github.com/abhishek622/streetsmart/user/internal/repository"
	"github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/go-sql-driver/mysql"
)

const errDuplicateEntry = 1062

// Repository defines a MySQL-based user repository.
//
// Schema:
//
//	CREATE TABLE users (
//	    id                VARCHAR(36) PRIMARY KEY,
//	    email             VARCHAR(255) NOT NULL UNIQUE,
//	    full_name         VARCHAR(255) NOT NULL,
//	    role              VARCHAR(32) NOT NULL,
//	    rating_ids        JSON NOT NULL,
//	    favorite_shop_ids JSON NOT NULL,
//	    version           BIGINT NOT NULL DEFAULT 0
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

// Get retrieves a user by id.
func (r *Repository) Get(ctx context.Context, id model.UserID) (*model.User, error) {
	var (
		u                  model.User
		ratings, favorites []byte
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, email, full_name, role, rating_ids, favorite_shop_ids, version FROM users WHERE id = ?", id).
		Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &ratings, &favorites, &u.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ratings, &u.RatingIDs); err != nil {
		return nil, fmt.Errorf("decode rating ids: %w", err)
	}
	if err := json.Unmarshal(favorites, &u.FavoriteShopIDs); err != nil {
		return nil, fmt.Errorf("decode favorite shop ids: %w", err)
	}
	return &u, nil
}

// Put stores a new user.
func (r *Repository) Put(ctx context.Context, u *model.User) error {
	ratings, favorites, err := encode(model.Projection{RatingIDs: u.RatingIDs, FavoriteShopIDs: u.FavoriteShopIDs})
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, full_name, role, rating_ids, favorite_shop_ids, version) VALUES (?, ?, ?, ?, ?, ?, ?)",
		u.ID, u.Email, u.FullName, u.Role, ratings, favorites, u.Version)
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errDuplicateEntry {
		return repository.ErrConflict
	}
	return err
}

// ReplaceProjection overwrites the relationship lists of a user if the stored
// version still equals p.Version, and returns the new version.
func (r *Repository) ReplaceProjection(ctx context.Context, id model.UserID, p model.Projection) (int64, error) {
	ratings, favorites, err := encode(p)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE users SET rating_ids = ?, favorite_shop_ids = ?, version = version + 1 WHERE id = ? AND version = ?",
		ratings, favorites, id, p.Version)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return p.Version + 1, nil
	}
	var exists bool
	if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)", id).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, repository.ErrNotFound
	}
	return 0, repository.ErrConflict
}

func encode(p model.Projection) ([]byte, []byte, error) {
	ratings, err := json.Marshal(nonNil(p.RatingIDs))
	if err != nil {
		return nil, nil, err
	}
	favorites, err := json.Marshal(nonNil(p.FavoriteShopIDs))
	if err != nil {
		return nil, nil, err
	}
	return ratings, favorites, nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
