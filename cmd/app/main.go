package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"triptalk/cmd/fx/ai_fx"
	"triptalk/cmd/fx/config_fx"
	"triptalk/cmd/fx/controllers_fx"
	"triptalk/cmd/fx/feedback_fx"
	"triptalk/cmd/fx/logger_fx"
	"triptalk/cmd/fx/memcache_fx"
	"triptalk/cmd/fx/sink_fx"
	"triptalk/cmd/fx/storage_fx"
	"triptalk/cmd/fx/travel_fx"
	"triptalk/internal/config"
	"triptalk/pkg/logger"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		storage_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		sink_fx.Module,
		travel_fx.Module,
		feedback_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", "addr", srv.Addr, "env", cfg.AppEnv)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
