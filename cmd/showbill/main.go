package main

import (
	"context"
	"fmt"
	"net/http"

	"showbill/internal/logging"
	"showbill/internal/store"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logging.New(logging.Config{}).Fatal(err, "invalid configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.SetGlobalLogger(logger)

	db, err := connectDatabase(context.Background(), cfg)
	if err != nil {
		logger.Fatal(err, "database unavailable")
	}
	defer db.Close()

	dataStore := store.New(db)

	if err := bootstrapDemoData(context.Background(), db); err != nil {
		logger.Fatal(err, "seeding demo data failed")
	}

	handler := newHTTPHandler(cfg, dataStore)

	logger.Info(fmt.Sprintf("listening on %s", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal(err, "server error")
	}
}
