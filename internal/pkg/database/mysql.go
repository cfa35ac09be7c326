package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cropsync/kiosk/internal/pkg/models"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// MySQLClient represents a MySQL database client
type MySQLClient struct {
	db *sqlx.DB
}

// NewMySQLClient creates a new MySQL client and verifies connectivity.
// parseTime is deliberately left off the DSN so DATETIME columns scan as
// their raw string form, which is how user records are serialized.
func NewMySQLClient(config models.DatabaseConfig) (*MySQLClient, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
	)

	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}

	return &MySQLClient{db: db}, nil
}

// GetDB returns the underlying sqlx database handle
func (m *MySQLClient) GetDB() *sqlx.DB {
	return m.db
}

// Close closes the database connection pool
func (m *MySQLClient) Close() error {
	return m.db.Close()
}
