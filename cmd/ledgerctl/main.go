package main

import (
	"context"
	"fmt"
	"os"

	"finledger/internal/cli"
	"finledger/internal/config"
	"finledger/internal/database"
	"finledger/internal/ledger"
	"finledger/internal/logger"
	"finledger/internal/persistence"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	code := run()
	logger.Sync()
	os.Exit(code)
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		return 1
	}

	dbManager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to open database:", err)
		return 1
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to run database migrations:", err)
		return 1
	}

	ctx := context.Background()
	store := ledger.NewStore()
	syncer := persistence.NewSyncer(database.NewKVStore(dbManager.DB()), store)
	syncer.Load(ctx)
	syncer.Start(ctx)
	defer syncer.Stop()

	app := cli.NewApp(store, cfg.Currency)
	return int(app.Run(ctx, os.Args[1:]))
}
