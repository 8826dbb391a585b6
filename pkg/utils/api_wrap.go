package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	MsgNoActivePlan = "아직 생성된 여행 일정이 없습니다. 먼저 /Travel-Plan을 호출하세요."
	msgTripNotFound = "여행 ID '%s'를 찾을 수 없습니다."
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// TripNotFoundMessage renders the client-facing not-found text for id.
func TripNotFoundMessage(id string) string {
	return fmt.Sprintf(msgTripNotFound, id)
}

func HandleServiceError(c *gin.Context, err error) {
	var notFound *TripNotFoundError

	switch {
	case errors.As(err, &notFound):
		RespondError(c, http.StatusNotFound, TripNotFoundMessage(notFound.ID))
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrNoActivePlan):
		RespondError(c, http.StatusConflict, MsgNoActivePlan)
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrSinkDisabled):
		RespondError(c, http.StatusServiceUnavailable, "Relational sink is not configured")
	case errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrEmptyGeneration):
		zap.S().Errorw("generation error", "error", err)
		RespondError(c, http.StatusBadGateway, "Failed to generate travel plan")
	case errors.Is(err, ErrStorageFailed):
		zap.S().Errorw("storage error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		zap.S().Errorw("unknown error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
