package sink_fx

import (
	"go.uber.org/fx"
	"triptalk/internal/config"
	"triptalk/internal/infra"
	"triptalk/pkg/logger"
)

var Module = fx.Provide(provideSinkClient)

func provideSinkClient(cfg config.Config, log *logger.Logger) infra.SinkClientInterface {
	return infra.NewSinkClient(cfg.SinkURL, cfg.SinkTimeout, log)
}
