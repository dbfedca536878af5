package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	dbPingTimeout = 5 * time.Second
	dbRetryFloor  = 250 * time.Millisecond
	dbRetryCeil   = 4 * time.Second
)

// connectDatabase opens the Postgres pool behind the directory and waits
// for it to answer pings, retrying with growing delays until the
// configured connect timeout elapses. The server usually races its
// database container on startup.
func connectDatabase(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	deadline := time.Now().Add(cfg.DBConnectTimeout)
	delay := dbRetryFloor
	var lastErr error

	for {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		lastErr = db.PingContext(pingCtx)
		cancel()
		if lastErr == nil {
			return db, nil
		}

		if ctx.Err() != nil || time.Now().Add(delay).After(deadline) {
			break
		}

		time.Sleep(delay)
		if delay < dbRetryCeil {
			delay *= 2
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("ping database: %w", lastErr)
}
