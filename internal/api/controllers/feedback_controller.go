package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"triptalk/internal/models/request_models"
	"triptalk/internal/services"
	"triptalk/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// ReviseTravelPlan godoc
// @Summary Revise the current plan
// @Description Apply a feedback message to the session's latest generated plan. Stored trips are not changed.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Conversation session"
// @Param request body request_models.FeedbackInput true "Feedback payload"
// @Success 200 {object} response_models.FeedbackReply
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) ReviseTravelPlan(c *gin.Context) {
	var req request_models.FeedbackInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reply, err := f.feedbackService.Revise(c.Request.Context(), c.GetHeader(SessionHeader), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Plan revised successfully")
}
