package response_models

import (
	"fmt"

	"triptalk/internal/infra"
	"triptalk/internal/models/trip_models"
)

const (
	MsgPlanCreated = "새로운 여행 계획이 생성되었습니다."
	MsgPlanUpdated = "기존 여행 계획이 업데이트되었습니다."
	msgTripDeleted = "여행 ID '%s'가 성공적으로 삭제되었습니다."
)

// TravelPlanResponse is returned by POST /Travel-Plan. Plan is the generated
// document without its machine-readable blocks.
type TravelPlanResponse struct {
	Plan     string                       `json:"plan"`
	TravelID string                       `json:"travel_id"`
	Message  string                       `json:"message"`
	Summary  trip_models.TripPlanResponse `json:"summary"`
	Sync     *infra.SinkResult            `json:"sync,omitempty"`
}

type FeedbackReply struct {
	Reply string `json:"reply"`
}

type TravelSummaryList struct {
	Summaries []trip_models.TripPlanResponse `json:"summaries"`
	Total     int                            `json:"total"`
}

// FullPlanResponse carries the verbatim generated document, blocks included.
type FullPlanResponse struct {
	ID   string `json:"id"`
	Plan string `json:"plan"`
}

func TripDeletedMessage(id string) string {
	return fmt.Sprintf(msgTripDeleted, id)
}
