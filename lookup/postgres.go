package lookup

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a connection pool and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// LoadBBK reads the BBK reference table into a code→id map.
func LoadBBK(ctx context.Context, pool *pgxpool.Pool) (map[string]int, error) {
	return loadMap(ctx, pool, `SELECT id, bbk_abb FROM public.bbk`)
}

// LoadUDC reads the UDC reference table into a code→id map.
func LoadUDC(ctx context.Context, pool *pgxpool.Pool) (map[string]int, error) {
	return loadMap(ctx, pool, `SELECT id, udc_abb FROM public.udc`)
}

// LoadMaps reads both reference tables.
func LoadMaps(ctx context.Context, pool *pgxpool.Pool) (Maps, error) {
	bbk, err := LoadBBK(ctx, pool)
	if err != nil {
		return Maps{}, fmt.Errorf("loading BBK map: %w", err)
	}
	udc, err := LoadUDC(ctx, pool)
	if err != nil {
		return Maps{}, fmt.Errorf("loading UDC map: %w", err)
	}
	return Maps{BBK: bbk, UDC: udc}, nil
}

func loadMap(ctx context.Context, pool *pgxpool.Pool, query string) (map[string]int, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying reference table: %w", err)
	}
	defer rows.Close()

	m := make(map[string]int)
	for rows.Next() {
		var id int
		var code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, fmt.Errorf("scanning reference row: %w", err)
		}
		m[code] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading reference rows: %w", err)
	}
	return m, nil
}
