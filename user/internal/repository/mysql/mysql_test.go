package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/abhishek622/streetsmart/user/internal/repository"
	"github.com/abhishek622/streetsmart/user/pkg/model"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestGet(t *testing.T) {
	r, mock := setup(t)
	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "role", "rating_ids", "favorite_shop_ids", "version"}).
		AddRow("u1", "a@b.c", "Ann", "CUSTOMER", []byte(`["r1"]`), []byte(`[]`), 3)
	mock.ExpectQuery("SELECT id, email").WithArgs(model.UserID("u1")).WillReturnRows(rows)

	u, err := r.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"r1"}, u.RatingIDs)
	assert.Empty(t, u.FavoriteShopIDs)
	assert.Equal(t, int64(3), u.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT id, email").WithArgs(model.UserID("u1")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPutDuplicate(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: errDuplicateEntry, Message: "Duplicate entry"})

	err := r.Put(context.Background(), &model.User{ID: "u1", Email: "a@b.c"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestReplaceProjection(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		exists   bool
		want     int64
		wantErr  error
	}{
		{name: "applied", affected: 1, want: 5},
		{name: "stale version", affected: 0, exists: true, wantErr: repository.ErrConflict},
		{name: "missing user", affected: 0, exists: false, wantErr: repository.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := setup(t)
			mock.ExpectExec("UPDATE users SET").
				WithArgs([]byte(`["r1"]`), []byte(`[]`), model.UserID("u1"), int64(4)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			if tt.affected == 0 {
				mock.ExpectQuery("SELECT EXISTS").WithArgs(model.UserID("u1")).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))
			}

			got, err := r.ReplaceProjection(context.Background(), "u1", model.Projection{RatingIDs: []string{"r1"}, Version: 4})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
