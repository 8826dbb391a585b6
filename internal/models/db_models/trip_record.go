package db_models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"triptalk/internal/models/trip_models"
)

// TripRecord is one trip in the postgres backend. The dedup key columns are
// broken out for querying; the full record lives in Payload.
type TripRecord struct {
	ID           string         `gorm:"type:varchar(36);primaryKey"`
	Position     int            `gorm:"index;not null"`
	Title        string         `gorm:"size:100"`
	Destination  string         `gorm:"index:idx_trip_key"`
	Departure    string         `gorm:"index:idx_trip_key"`
	StartDate    string         `gorm:"index:idx_trip_key"`
	EndDate      string         `gorm:"index:idx_trip_key"`
	Companions   string
	Budget       string
	TravelStyles pq.StringArray `gorm:"type:text[]"`
	Payload      datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt    int64          `gorm:"autoCreateTime"`
	UpdatedAt    int64          `gorm:"autoUpdateTime"`
}

func (TripRecord) TableName() string {
	return "trip_records"
}

func (r *TripRecord) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if r.CreatedAt == 0 {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	return nil
}

func NewTripRecord(position int, plan trip_models.TripPlan) (TripRecord, error) {
	payload, err := json.Marshal(plan)
	if err != nil {
		return TripRecord{}, err
	}
	styles := make(pq.StringArray, 0, len(plan.TravelStyles))
	for _, s := range plan.TravelStyles {
		styles = append(styles, string(s))
	}
	return TripRecord{
		ID:           plan.ID,
		Position:     position,
		Title:        plan.Title,
		Destination:  plan.Destination,
		Departure:    plan.Departure,
		StartDate:    plan.StartDate,
		EndDate:      plan.EndDate,
		Companions:   plan.Companions,
		Budget:       plan.Budget,
		TravelStyles: styles,
		Payload:      datatypes.JSON(payload),
	}, nil
}

// TripPlan decodes the stored payload. The row id wins over any id inside it.
func (r TripRecord) TripPlan() (trip_models.TripPlan, error) {
	var plan trip_models.TripPlan
	if err := json.Unmarshal(r.Payload, &plan); err != nil {
		return trip_models.TripPlan{}, err
	}
	plan.ID = r.ID
	return plan, nil
}
