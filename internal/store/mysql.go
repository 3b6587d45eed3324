package store

// MySQL KV driver.  All entries live in a single two-column table so the
// driver stays interchangeable with Redis: the store never issues anything
// richer than get/set/delete by key.  The table is created on startup when
// missing.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLKV stores entries in the kv_entries table.
type MySQLKV struct {
	db *sql.DB
}

// NewMySQLKV connects to MySQL, verifies the connection and ensures the
// kv_entries table exists.
func NewMySQLKV(user, pass, host, port, name string) (*MySQLKV, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	// MEDIUMTEXT comfortably holds a full collection document at the scale
	// this app runs at (tens to low-thousands of rows per collection).
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS kv_entries (
		k VARCHAR(191) PRIMARY KEY,
		v MEDIUMTEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`); err != nil {
		return nil, err
	}
	return &MySQLKV{db: db}, nil
}

func (m *MySQLKV) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := m.db.QueryRowContext(ctx,
		"SELECT v FROM kv_entries WHERE k=? LIMIT 1", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (m *MySQLKV) Set(ctx context.Context, key, value string) error {
	_, err := m.db.ExecContext(ctx,
		"INSERT INTO kv_entries (k, v) VALUES (?,?) ON DUPLICATE KEY UPDATE v=VALUES(v)",
		key, value)
	return err
}

func (m *MySQLKV) Delete(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE k=?", key)
	return err
}

// Close releases the underlying connection pool.
func (m *MySQLKV) Close() error { return m.db.Close() }
