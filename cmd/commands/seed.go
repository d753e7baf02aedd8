package commands

import (
	"context"
	"errors"
	"strconv"

	"emogo/config"
	"emogo/internal/application/usecase"
	"emogo/internal/infrastructure/database"
	"emogo/pkg/logger"
)

const defaultSeedCount = 10

// HandleSeed clears all collections and stored blobs, then repopulates the
// store with synthetic demo data.
func HandleSeed(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	count := defaultSeedCount
	if len(args) > 3 {
		count, err = strconv.Atoi(args[3])
		if err != nil || count <= 0 {
			ExitOnError(errors.New("count must be a positive integer"))
		}
	}

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("failed to disconnect from database", "err", err)
		}
	}()

	blobs, err := buildBlobStore(&cfg.Media)
	if err != nil {
		ExitOnError(err)
	}

	seeder := usecase.NewSeeder(
		database.NewRecordWriter(db),
		database.NewRecordRemover(db),
		blobs,
	)

	ctx := context.Background()

	if err := seeder.Reset(ctx); err != nil {
		ExitOnError(err)
	}
	if err := seeder.Run(ctx, count); err != nil {
		ExitOnError(err)
	}

	logger.Info("seeding finished", "vlogs", count, "sentiments", 2*count, "gps", 2*count)
}
