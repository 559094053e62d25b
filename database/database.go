package database

import (
	"creative-edge/internal/infra/logger"
	"creative-edge/internal/infra/store"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func InitDB(dsn string) {
	if dsn == "" {
		logger.L.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.L.Fatal("failed to connect to database", zap.Error(err))
	}

	DB = db

	if err := DB.AutoMigrate(&store.Record{}); err != nil {
		logger.L.Fatal("automigrate error", zap.Error(err))
	}

	logger.L.Info("connected and migrated")
}
