package sqlutil

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSNSetsParseTime(t *testing.T) {
	for _, in := range []string{
		"root:secret@tcp(localhost:3306)/streetsmart",
		"root:secret@tcp(localhost:3306)/streetsmart?parseTime=false",
	} {
		t.Run(in, func(t *testing.T) {
			out, err := DSN(in)
			require.NoError(t, err)
			cfg, err := mysql.ParseDSN(out)
			require.NoError(t, err)
			assert.True(t, cfg.ParseTime)
			assert.True(t, cfg.ClientFoundRows)
			assert.Equal(t, "streetsmart", cfg.DBName)
			assert.Equal(t, "localhost:3306", cfg.Addr)
		})
	}
}

func TestOpen(t *testing.T) {
	db, err := Open("root:secret@tcp(localhost:3306)/streetsmart")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open("not a dsn")
	assert.Error(t, err)
}
