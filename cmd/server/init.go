package main

import (
	"context"

	"spa_booking/config"
	"spa_booking/internal/database"
	"spa_booking/internal/global"
	"spa_booking/internal/logger"

	authmodels "spa_booking/internal/api/auth/models"
	feedbackmodels "spa_booking/internal/api/feedback/models"
	ordermodels "spa_booking/internal/api/order/models"
	svcmodels "spa_booking/internal/api/service/models"
)

// InitGlobal khởi tạo tất cả các biến toàn cục của ứng dụng
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// initValidator khởi tạo validator và đăng ký các custom validators
func initValidator() {
	global.InitValidator()
	logger.GetAppLogger().Info("Initialized validator")
}

// initConfig đọc và gán cấu hình server vào biến toàn cục
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logger.GetAppLogger().Fatal("Failed to load configuration")
	}
	logger.GetAppLogger().Info("Initialized config")
}

// initDatabase_MongoDB kết nối MongoDB, đảm bảo collections và tạo index cho các model
func initDatabase_MongoDB() {
	log := logger.GetAppLogger()

	client, err := database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	global.MongoDB_Session = client
	log.Info("Initialized MongoDB session")

	if err := database.EnsureDatabaseAndCollections(client); err != nil {
		log.Fatalf("Failed to ensure database and collections: %v", err)
	}

	db := client.Database(global.MongoDB_ServerConfig.MongoDB_DBName)

	indexTargets := []struct {
		colName string
		model   interface{}
	}{
		{global.MongoDB_ColNames.Users, authmodels.User{}},
		{global.MongoDB_ColNames.Services, svcmodels.Service{}},
		{global.MongoDB_ColNames.Orders, ordermodels.Order{}},
		{global.MongoDB_ColNames.Feedbacks, feedbackmodels.Feedback{}},
	}
	for _, target := range indexTargets {
		if err := database.CreateIndexes(context.TODO(), db.Collection(target.colName), target.model); err != nil {
			log.Fatalf("Failed to create indexes for collection %s: %v", target.colName, err)
		}
	}
	log.Info("Initialized MongoDB indexes")
}
