package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"triptalk/internal/api/controllers"
	"triptalk/pkg/logger"
	"triptalk/pkg/middleware"
)

type RouterParams struct {
	CORSOrigins        []string
	Log                *logger.Logger
	TravelController   *controllers.TravelController
	FeedbackController *controllers.FeedbackController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(middleware.CORSMiddleware(p.CORSOrigins))

	RegisterRoutes(r, p.TravelController, p.FeedbackController)
	return r
}

func RegisterRoutes(r *gin.Engine,
	travelController *controllers.TravelController,
	feedbackController *controllers.FeedbackController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/Travel-Plan", travelController.CreateTravelPlan)
	r.POST("/feedback", feedbackController.ReviseTravelPlan)

	r.GET("/travel-summary/:id", travelController.GetTravelSummary)
	r.GET("/travel-summaries", travelController.ListTravelSummaries)
	r.GET("/travel-plan/:id", travelController.GetTravelPlan)

	travelGroup := r.Group("/travel")
	travelGroup.DELETE("/:id", travelController.DeleteTravel)
	travelGroup.POST("/:id/sync", travelController.SyncTravel)
}
