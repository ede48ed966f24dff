// Package sqlutil opens MySQL connection pools for the service repositories.
package sqlutil

import (
	"database/sql"

	"github.com/go-sql-driver/mysql"
)

// DSN normalizes a MySQL DSN so DATETIME columns scan into time.Time and
// RowsAffected reports matched rows rather than changed rows.
func DSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", err
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}

// Open opens a connection pool for the normalized form of dsn.
func Open(dsn string) (*sql.DB, error) {
	normalized, err := DSN(dsn)
	if err != nil {
		return nil, err
	}
	return sql.Open("mysql", normalized)
}
