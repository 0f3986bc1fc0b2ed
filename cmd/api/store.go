package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Azizul-haque1/plate-share-server/internal/config"
	"github.com/Azizul-haque1/plate-share-server/internal/database"
	"github.com/Azizul-haque1/plate-share-server/internal/database/migration"
	handlers "github.com/Azizul-haque1/plate-share-server/internal/http/handler"
	"github.com/Azizul-haque1/plate-share-server/internal/repository"
	"github.com/Azizul-haque1/plate-share-server/internal/repository/mongodb"
	"github.com/Azizul-haque1/plate-share-server/internal/repository/postgres"
)

// store is the one handle every repository shares for the life of the process.
type store struct {
	foods    repository.FoodRepository
	requests repository.RequestRepository
	pinger   handlers.Pinger
	close    func(context.Context) error
}

func openStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &store{
			foods:    postgres.NewFoodPostgres(db),
			requests: postgres.NewRequestPostgres(db),
			pinger:   db,
			close:    func(context.Context) error { return db.Close() },
		}, nil

	case config.BackendMongo:
		client, err := database.NewMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		logger.Info("mongo indexes ensured", "component", "database", "database", cfg.Mongo.Database)
		return &store{
			foods:    mongodb.NewFoodMongo(db),
			requests: mongodb.NewRequestMongo(db),
			pinger:   database.MongoPinger{Client: client},
			close:    client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
}
