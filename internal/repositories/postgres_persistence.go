package repositories

import (
	"context"

	"gorm.io/gorm"

	"triptalk/internal/infra"
	"triptalk/internal/models/db_models"
	"triptalk/internal/models/trip_models"
	"triptalk/pkg/logger"
)

type postgresPersistence struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewPostgresPersistence migrates trip_records and returns a backend over it.
func NewPostgresPersistence(db *gorm.DB, log *logger.Logger) (Persistence, error) {
	if err := db.AutoMigrate(&db_models.TripRecord{}); err != nil {
		return nil, err
	}
	return &postgresPersistence{db: db, log: log}, nil
}

func (p *postgresPersistence) Load(ctx context.Context) ([]trip_models.TripPlan, error) {
	var rows []db_models.TripRecord
	if err := p.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]trip_models.TripPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := row.TripPlan()
		if err != nil {
			p.log.Warn("skipping malformed trip row", "id", row.ID, "error", err)
			continue
		}
		out = append(out, plan)
	}
	return out, nil
}

// Save replaces every row with the snapshot in one transaction.
func (p *postgresPersistence) Save(ctx context.Context, trips []trip_models.TripPlan) (err error) {
	rows := make([]db_models.TripRecord, 0, len(trips))
	for i, plan := range trips {
		row, err := db_models.NewTripRecord(i, plan)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	tx := infra.StartTransaction(p.db.WithContext(ctx))
	if tx.Error != nil {
		return tx.Error
	}
	defer func() { err = infra.ReleaseTransaction(tx, err) }()

	if err = tx.Where("1 = 1").Delete(&db_models.TripRecord{}).Error; err != nil {
		return err
	}
	if len(rows) > 0 {
		err = tx.CreateInBatches(rows, 100).Error
	}
	return err
}

func (p *postgresPersistence) Close() error {
	infra.ClosePostgresql(p.db)
	return nil
}
