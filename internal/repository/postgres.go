// Package repository реализует хранение команд, заявок и проектов в PostgreSQL.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres держит пул соединений и раздаётся всем репозиториям.
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres разбирает DSN и открывает пул соединений к базе.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	return &Postgres{Pool: pool}, nil
}
