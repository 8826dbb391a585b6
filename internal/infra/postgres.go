package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func InitPostgresql(dsn string) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return connectionPool, nil
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.S().Errorw("error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		zap.S().Errorw("error closing database connection", "error", err)
	} else {
		zap.S().Info("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		zap.S().Errorw("error starting transaction", "error", tx.Error)
	}
	return tx
}

// ReleaseTransaction rolls back when err is non-nil and commits otherwise. It
// returns err, or the commit error.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			zap.S().Errorw("error rolling back transaction", "error", rollbackErr, "cause", err)
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		zap.S().Errorw("error committing transaction", "error", commitErr)
		return commitErr
	}
	return nil
}
