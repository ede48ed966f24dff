package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/abhishek622/streetsmart/favorite/internal/repository"
	"github.com/abhishek622/streetsmart/favorite/pkg/model"
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

func TestPut(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "stored"},
		{name: "duplicate pair", execErr: &mysql.MySQLError{Number: errDuplicateEntry}, wantErr: repository.ErrConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := setup(t)
			exp := mock.ExpectExec("INSERT INTO favorites").WithArgs(model.FavoriteID("f1"), "u1", "s1", now)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}
			err := r.Put(context.Background(), &model.Favorite{ID: "f1", UserID: "u1", ShopID: "s1", CreatedAt: now})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteByPair(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("DELETE FROM favorites").WithArgs("u1", "s1").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, r.DeleteByPair(context.Background(), "u1", "s1"), repository.ErrNotFound)
}

func TestExistsAndList(t *testing.T) {
	r, mock := setup(t)
	now := time.Now()
	mock.ExpectQuery("SELECT EXISTS").WithArgs("u1", "s1").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT id, user_id, shop_id, created_at FROM favorites").WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "shop_id", "created_at"}).
			AddRow("f1", "u1", "s1", now))

	ok, err := r.Exists(context.Background(), "u1", "s1")
	require.NoError(t, err)
	assert.True(t, ok)

	list, err := r.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.FavoriteID("f1"), list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
