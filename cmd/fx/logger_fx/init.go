package logger_fx

import (
	"context"

	"go.uber.org/fx"
	"triptalk/internal/config"
	"triptalk/internal/parser"
	"triptalk/pkg/logger"
)

var Module = fx.Provide(provideLogger)

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	log.Global()
	parser.SetLogger(log)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Sync()
			return nil
		},
	})
	return log, nil
}
