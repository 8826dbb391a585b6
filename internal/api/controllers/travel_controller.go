package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"triptalk/internal/models/request_models"
	"triptalk/internal/models/response_models"
	"triptalk/internal/services"
	"triptalk/pkg/utils"
)

// SessionHeader selects the conversation a request belongs to. Requests
// without it share the default session.
const SessionHeader = "X-Session-ID"

type TravelController struct {
	travelService services.TravelServiceInterface
}

func NewTravelController(travelService services.TravelServiceInterface) *TravelController {
	return &TravelController{travelService: travelService}
}

// CreateTravelPlan godoc
// @Summary Create travel plan
// @Description Generate a travel plan, store its structured summary and start a new conversation for the session
// @Tags Travel
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Conversation session"
// @Param request body request_models.TravelInput true "Travel conditions"
// @Success 200 {object} response_models.TravelPlanResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /Travel-Plan [post]
func (tc *TravelController) CreateTravelPlan(c *gin.Context) {
	var req request_models.TravelInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	resp, err := tc.travelService.CreatePlan(c.Request.Context(), c.GetHeader(SessionHeader), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, resp.Message)
}

// GetTravelSummary godoc
// @Summary Get travel summary
// @Tags Travel
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} trip_models.TripPlanResponse
// @Failure 404 {object} utils.APIResponse
// @Router /travel-summary/{id} [get]
func (tc *TravelController) GetTravelSummary(c *gin.Context) {
	summary, err := tc.travelService.GetSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Fetched travel summary successfully")
}

// ListTravelSummaries godoc
// @Summary List travel summaries
// @Tags Travel
// @Produce json
// @Success 200 {object} response_models.TravelSummaryList
// @Router /travel-summaries [get]
func (tc *TravelController) ListTravelSummaries(c *gin.Context) {
	utils.RespondSuccess(c, tc.travelService.ListSummaries(c.Request.Context()), "Fetched travel summaries successfully")
}

// GetTravelPlan godoc
// @Summary Get full travel plan
// @Description Returns the generated document as it was stored, code blocks included
// @Tags Travel
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.FullPlanResponse
// @Failure 404 {object} utils.APIResponse
// @Router /travel-plan/{id} [get]
func (tc *TravelController) GetTravelPlan(c *gin.Context) {
	plan, err := tc.travelService.GetFullPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Fetched travel plan successfully")
}

// DeleteTravel godoc
// @Summary Delete trip
// @Tags Travel
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /travel/{id} [delete]
func (tc *TravelController) DeleteTravel(c *gin.Context) {
	id := c.Param("id")
	if err := tc.travelService.DeleteTrip(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, response_models.TripDeletedMessage(id))
}

// SyncTravel godoc
// @Summary Send trip to the relational sink
// @Description The sink outcome is reported in data; a failed delivery is still a 200
// @Tags Travel
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} infra.SinkResult
// @Failure 404 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /travel/{id}/sync [post]
func (tc *TravelController) SyncTravel(c *gin.Context) {
	result, err := tc.travelService.SyncTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Trip synced successfully"
	if !result.Success {
		message = "Trip sync failed: " + result.Reason
	}
	utils.RespondSuccess(c, result, message)
}
