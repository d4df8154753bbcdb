package db

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Config holds the Postgres connection parameters assembled from the CLI.
type Config struct {
	Host         string
	Port         uint16
	Name         string
	User         string
	PasswordFile string
}

// ConnString assembles a pgx keyword/value connection string. The password,
// if any, is read from PasswordFile and trimmed; without a password file the
// connection is attempted without one.
func (c Config) ConnString() (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "host=%s port=%d user=%s", c.Host, c.Port, c.User)
	if c.Name != "" {
		fmt.Fprintf(&b, " dbname=%s", c.Name)
	}
	if c.PasswordFile != "" {
		password, err := os.ReadFile(c.PasswordFile)
		if err != nil {
			return "", fmt.Errorf("read DB password file: %w", err)
		}
		fmt.Fprintf(&b, " password=%s", strings.TrimSpace(string(password)))
	}
	return b.String(), nil
}

// Connect opens a pgx connection pool for the given configuration.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	connString, err := cfg.ConnString()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return pool, nil
}
