package mysql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/abhishek622/streetsmart/shop/internal/repository"
	"github.com/abhishek622/streetsmart/shop/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shopColumns = []string{"id", "name", "description", "category", "address", "latitude", "longitude", "owner_id", "status", "rating_ids", "version"}

func setup(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db), mock
}

func TestGet(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT id, name").WithArgs(model.ShopID("s1")).
		WillReturnRows(sqlmock.NewRows(shopColumns).
			AddRow("s1", "Amber", "", "CAFE", "Main st", 1.5, 2.5, "o1", "PENDING", []byte(`["r1","r2"]`), 2))

	s, err := r.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, s.Status)
	assert.Equal(t, []string{"r1", "r2"}, s.RatingIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT id, name").WithArgs(model.ShopID("s1")).
		WillReturnRows(sqlmock.NewRows(shopColumns))

	_, err := r.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestList(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectQuery("SELECT id, name .* ORDER BY name").
		WillReturnRows(sqlmock.NewRows(shopColumns).
			AddRow("s1", "Amber", "", "CAFE", "", 0.0, 0.0, "o1", "ACTIVE", []byte(`[]`), 0).
			AddRow("s2", "Bakery", "", "FOOD", "", 0.0, 0.0, "o2", "PENDING", []byte(`[]`), 0))

	shops, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "Bakery", shops[1].Name)
}

func TestDeleteMissing(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("DELETE FROM shops").WithArgs(model.ShopID("s1")).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, r.Delete(context.Background(), "s1"), repository.ErrNotFound)
}

func TestReplaceRatingIDsStale(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("UPDATE shops SET rating_ids").
		WithArgs([]byte(`["r1"]`), model.ShopID("s1"), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs(model.ShopID("s1")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, err := r.ReplaceRatingIDs(context.Background(), "s1", []string{"r1"}, 1)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStatus(t *testing.T) {
	r, mock := setup(t)
	mock.ExpectExec("UPDATE shops SET status").WithArgs(model.StatusActive, model.ShopID("s1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, name").WithArgs(model.ShopID("s1")).
		WillReturnRows(sqlmock.NewRows(shopColumns).
			AddRow("s1", "Amber", "", "CAFE", "", 0.0, 0.0, "o1", "ACTIVE", []byte(`[]`), 0))

	s, err := r.SetStatus(context.Background(), "s1", model.StatusActive)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, s.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
