package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/abhishek622/streetsmart/rating/internal/repository"
	"github.com/abhishek622/streetsmart/rating/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ratingColumns = []string{"id", "author_id", "shop_id", "score", "review", "created_at", "updated_at"}

func setup(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestPutAndGet(t *testing.T) {
	r, mock := setup(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	rating := &model.Rating{ID: "r1", AuthorID: "u1", ShopID: "s1", Score: 4, Review: "good", CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO ratings").
		WithArgs(model.RatingID("r1"), "u1", "s1", model.Score(4), "good", now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, author_id").WithArgs(model.RatingID("r1")).
		WillReturnRows(sqlmock.NewRows(ratingColumns).AddRow("r1", "u1", "s1", 4, "good", now, now))

	require.NoError(t, r.Put(context.Background(), rating))
	got, err := r.Get(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, rating, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT id, author_id").WithArgs(model.RatingID("r1")).WillReturnRows(sqlmock.NewRows(ratingColumns))

	_, err := r.Get(context.Background(), "r1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("DELETE FROM ratings").WithArgs(model.RatingID("r1")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM ratings").WithArgs(model.RatingID("r1")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.Delete(context.Background(), "r1"))
	assert.ErrorIs(t, r.Delete(context.Background(), "r1"), repository.ErrNotFound)
}

func TestListAndCountByShop(t *testing.T) {
	r, mock := setup(t)
	now := time.Now()
	mock.ExpectQuery("SELECT id, author_id .* WHERE shop_id = \\? ORDER BY created_at").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(ratingColumns).
			AddRow("r1", "u1", "s1", 4, "", now, now).
			AddRow("r2", "u2", "s1", 5, "", now, now))
	mock.ExpectQuery("SELECT COUNT").WithArgs("s1").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	ratings, err := r.ListByShop(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
	n, err := r.CountByShop(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "existing", affected: 1},
		{name: "deleted", affected: 0, wantErr: repository.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := setup(t)
			mock.ExpectExec("UPDATE ratings SET score = \\?, review = \\?, updated_at = \\? WHERE id = \\?").
				WithArgs(model.Score(2), "worse", now, model.RatingID("r1")).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := r.Update(context.Background(), &model.Rating{ID: "r1", Score: 2, Review: "worse", UpdatedAt: now})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInvalidScoreRejected(t *testing.T) {
	r, mock := setup(t)
	for _, score := range []model.Score{0, 6} {
		rating := &model.Rating{ID: "r1", AuthorID: "u1", ShopID: "s1", Score: score}
		assert.ErrorIs(t, r.Put(context.Background(), rating), repository.ErrInvalidScore)
		assert.ErrorIs(t, r.Update(context.Background(), rating), repository.ErrInvalidScore)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
