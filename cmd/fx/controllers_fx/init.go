package controllers_fx

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"triptalk/internal/api"
	"triptalk/internal/api/controllers"
	"triptalk/internal/config"
	"triptalk/pkg/logger"
)

var Module = fx.Provide(provideRouter)

func provideRouter(
	cfg config.Config,
	log *logger.Logger,
	travelController *controllers.TravelController,
	feedbackController *controllers.FeedbackController) *gin.Engine {

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(api.RouterParams{
		CORSOrigins:        cfg.CORSOrigins,
		Log:                log.With("component", "http"),
		TravelController:   travelController,
		FeedbackController: feedbackController,
	})
}
