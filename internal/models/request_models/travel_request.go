package request_models

import "triptalk/internal/models/trip_models"

// TravelInput is the body of POST /Travel-Plan. Style values are validated by
// trip_models.TravelStyle while decoding.
type TravelInput struct {
	Companions  string                    `json:"companions" binding:"required"`
	Departure   string                    `json:"departure" binding:"required"`
	Destination string                    `json:"destination" binding:"required"`
	StartDate   string                    `json:"start_date" binding:"required"`
	EndDate     string                    `json:"end_date" binding:"required"`
	Style       []trip_models.TravelStyle `json:"style" binding:"required,min=1"`
	Budget      string                    `json:"budget" binding:"required"`
}

type FeedbackInput struct {
	Message string `json:"message" binding:"required"`
}
