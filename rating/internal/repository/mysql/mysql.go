package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/abhishek622/streetsmart/internal/sqlutil"
	"github.com/abhishek622/streetsmart/rating/internal/repository"
	"github.com/abhishek622/streetsmart/rating/pkg/model"
)

// Repository defines a MySQL-based rating repository.
//
// Schema:
//
//	CREATE TABLE ratings (
//	    id         VARCHAR(36) PRIMARY KEY,
//	    author_id  VARCHAR(36) NOT NULL,
//	    shop_id    VARCHAR(36) NOT NULL,
//	    score      TINYINT NOT NULL CHECK (score BETWEEN 1 AND 5),
//	    review     TEXT NOT NULL,
//	    created_at DATETIME(6) NOT NULL,
//	    updated_at DATETIME(6) NOT NULL,
//	    INDEX ratings_shop_id (shop_id)
//	);
type Repository struct {
	db *sql.DB
}

const columns = "id, author_id, shop_id, score, review, created_at, updated_at"

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

func scan(row scanner) (*model.Rating, error) {
	var rating model.Rating
	if err := row.Scan(&rating.ID, &rating.AuthorID, &rating.ShopID, &rating.Score, &rating.Review, &rating.CreatedAt, &rating.UpdatedAt); err != nil {
		return nil, err
	}
	return &rating, nil
}

// Get retrieves a rating by id.
func (r *Repository) Get(ctx context.Context, id model.RatingID) (*model.Rating, error) {
	rating, err := scan(r.db.QueryRowContext(ctx, "SELECT "+columns+" FROM ratings WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return rating, err
}

// Put creates a rating.
func (r *Repository) Put(ctx context.Context, rating *model.Rating) error {
	if !rating.Score.Valid() {
		return repository.ErrInvalidScore
	}
	_, err := r.db.ExecContext(ctx, "INSERT INTO ratings ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		rating.ID, rating.AuthorID, rating.ShopID, rating.Score, rating.Review, rating.CreatedAt, rating.UpdatedAt)
	return err
}

// Update changes the score, review and update time of an existing rating.
func (r *Repository) Update(ctx context.Context, rating *model.Rating) error {
	if !rating.Score.Valid() {
		return repository.ErrInvalidScore
	}
	res, err := r.db.ExecContext(ctx, "UPDATE ratings SET score = ?, review = ?, updated_at = ? WHERE id = ?",
		rating.Score, rating.Review, rating.UpdatedAt, rating.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a rating.
func (r *Repository) Delete(ctx context.Context, id model.RatingID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM ratings WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// requireRow maps zero matched rows to ErrNotFound.
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

// ListByShop returns the ratings of a shop, oldest first.
func (r *Repository) ListByShop(ctx context.Context, shopID string) ([]*model.Rating, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+columns+" FROM ratings WHERE shop_id = ? ORDER BY created_at", shopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []*model.Rating
	for rows.Next() {
		rating, err := scan(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, rating)
	}
	return res, rows.Err()
}

// CountByShop returns the number of ratings of a shop.
func (r *Repository) CountByShop(ctx context.Context, shopID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM ratings WHERE shop_id = ?", shopID).Scan(&n)
	return n, err
}
