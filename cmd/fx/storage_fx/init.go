package storage_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"triptalk/internal/config"
	"triptalk/internal/infra"
	"triptalk/internal/repositories"
	"triptalk/internal/services"
	"triptalk/pkg/logger"
	"triptalk/pkg/utils"
)

var Module = fx.Provide(
	providePersistence, provideTripStore, providePlanArchive,
)

func providePersistence(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (repositories.Persistence, error) {
	var (
		p   repositories.Persistence
		err error
	)
	switch cfg.StoreDriver {
	case config.DriverFile:
		p = repositories.NewJSONFilePersistence(cfg.TripDataPath(), log)
	case config.DriverBolt:
		p, err = repositories.NewBoltPersistence(cfg.BoltPath, log)
	case config.DriverPostgres:
		db, dbErr := infra.InitPostgresql(cfg.PostgresURL)
		if dbErr != nil {
			return nil, dbErr
		}
		p, err = repositories.NewPostgresPersistence(db, log)
	default:
		return nil, fmt.Errorf("%w: %q", utils.ErrUnsupportedDriver, cfg.StoreDriver)
	}
	if err != nil {
		return nil, err
	}

	log.Info("trip persistence ready", "driver", cfg.StoreDriver)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return p.Close()
		},
	})
	return p, nil
}

func provideTripStore(lc fx.Lifecycle, p repositories.Persistence, log *logger.Logger) repositories.TripStoreInterface {
	store := repositories.NewTripStore(p, log)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return store.Load(ctx)
		},
	})
	return store
}

func providePlanArchive(cfg config.Config, log *logger.Logger) services.PlanArchive {
	return repositories.NewPlanWriter(cfg.LatestPlanPath(), log)
}
