// Package postgres implementa los repositorios de dominio sobre PostgreSQL
// (pgx/v5). Es el backend alternativo al de archivos para despliegues con
// más de un cliente concurrente; ver STORE_BACKEND en la configuración.
package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DiegoBaladas/Facturacion/pkg/config"
)

// NewPool crea el pool de conexiones con el codec NUMERIC↔decimal registrado.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parsear DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	// NUMERIC/DECIMAL -> shopspring/decimal en todas las conexiones.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// EnsureSchema crea las tablas si no existen. No hay versionado de esquema;
// los cambios se aplican de forma aditiva.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS productos (
			id      TEXT PRIMARY KEY,
			codigo  TEXT NOT NULL UNIQUE,
			nombre  TEXT NOT NULL,
			precio  NUMERIC NOT NULL,
			pos     BIGSERIAL
		)`,
		`CREATE TABLE IF NOT EXISTS clientes (
			id       TEXT PRIMARY KEY,
			nombre   TEXT NOT NULL,
			email    TEXT NOT NULL,
			telefono TEXT NOT NULL,
			pos      BIGSERIAL
		)`,
		`CREATE TABLE IF NOT EXISTS facturas (
			id          TEXT PRIMARY KEY,
			cliente_id  TEXT NOT NULL,
			items       JSONB NOT NULL,
			fecha       TIMESTAMPTZ NOT NULL,
			subtotal    NUMERIC NOT NULL,
			iva         NUMERIC NOT NULL,
			total       NUMERIC NOT NULL,
			aplicar_iva BOOLEAN NOT NULL,
			pos         BIGSERIAL
		)`,
	}
	for _, stmt := range ddl {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}
