package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhishek622/streetsmart/internal/sqlutil"
	"github.com/abhishek622/streetsmart/shop/internal/repository"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
)

// Repository defines a MySQL-based shop repository.
//
// Schema:
//
//	CREATE TABLE shops (
//	    id          VARCHAR(36) PRIMARY KEY,
//	    name        VARCHAR(255) NOT NULL,
//	    description TEXT NOT NULL,
//	    category    VARCHAR(64) NOT NULL,
//	    address     VARCHAR(255) NOT NULL,
//	    latitude    DOUBLE NOT NULL,
//	    longitude   DOUBLE NOT NULL,
//	    owner_id    VARCHAR(36) NOT NULL,
//	    status      VARCHAR(16) NOT NULL,
//	    rating_ids  JSON NOT NULL,
//	    version     BIGINT NOT NULL DEFAULT 0
//	);
type Repository struct {
	db *sql.DB
}

const columns = "id, name, description, category, address, latitude, longitude, owner_id, status, rating_ids, version"

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

func scan(row scanner) (*model.Shop, error) {
	var (
		s       model.Shop
		ratings []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.Address,
		&s.Latitude, &s.Longitude, &s.OwnerID, &s.Status, &ratings, &s.Version); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ratings, &s.RatingIDs); err != nil {
		return nil, fmt.Errorf("decode rating ids: %w", err)
	}
	return &s, nil
}

// Get retrieves a shop by id.
func (r *Repository) Get(ctx context.Context, id model.ShopID) (*model.Shop, error) {
	s, err := scan(r.db.QueryRowContext(ctx, "SELECT "+columns+" FROM shops WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return s, err
}

// List returns all shops ordered by name.
func (r *Repository) List(ctx context.Context) ([]*model.Shop, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columns+" FROM shops ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Shop
	for rows.Next() {
		s, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// Put stores a shop, replacing any existing row with the same id.
func (r *Repository) Put(ctx context.Context, s *model.Shop) error {
	ratings, err := encode(s.RatingIDs)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO shops ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE name = VALUES(name), description = VALUES(description), category = VALUES(category), "+
			"address = VALUES(address), latitude = VALUES(latitude), longitude = VALUES(longitude), status = VALUES(status)",
		s.ID, s.Name, s.Description, s.Category, s.Address, s.Latitude, s.Longitude, s.OwnerID, s.Status, ratings, s.Version)
	return err
}

// Delete removes a shop.
func (r *Repository) Delete(ctx context.Context, id model.ShopID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM shops WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ReplaceRatingIDs overwrites the rating list of a shop if the stored version
// still equals version, and returns the new version.
func (r *Repository) ReplaceRatingIDs(ctx context.Context, id model.ShopID, ratingIDs []string, version int64) (int64, error) {
	ratings, err := encode(ratingIDs)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE shops SET rating_ids = ?, version = version + 1 WHERE id = ? AND version = ?", ratings, id, version)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return version + 1, nil
	}
	var exists bool
	if err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM shops WHERE id = ?)", id).Scan(&exists); err != nil {
		return 0, err
	}
	if !exists {
		return 0, repository.ErrNotFound
	}
	return 0, repository.ErrConflict
}

// SetStatus changes the lifecycle status of a shop.
func (r *Repository) SetStatus(ctx context.Context, id model.ShopID, status model.Status) (*model.Shop, error) {
	if _, err := r.db.ExecContext(ctx, "UPDATE shops SET status = ? WHERE id = ?", status, id); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// requireRow maps zero affected rows to ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func encode(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}
