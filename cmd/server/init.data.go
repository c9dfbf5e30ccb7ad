package main

import (
	"context"
	"errors"
	"time"

	authmodels "spa_booking/internal/api/auth/models"
	authservice "spa_booking/internal/api/auth/service"
	svcmodels "spa_booking/internal/api/service/models"
	catalogservice "spa_booking/internal/api/service/service"
	"spa_booking/internal/common"
	"spa_booking/internal/global"
	"spa_booking/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// InitDefaultData khởi tạo dữ liệu mặc định: tài khoản admin và catalog dịch vụ
func InitDefaultData() {
	log := logger.GetAppLogger()

	if err := initAdminUser(); err != nil {
		log.Fatalf("Failed to initialize admin user: %v", err)
	}

	if err := initDefaultServices(); err != nil {
		log.Warnf("Failed to initialize default services: %v", err)
	}
}

// initAdminUser tạo tài khoản admin mặc định nếu chưa tồn tại.
// Bỏ qua khi ADMIN_PASSWORD không được cấu hình.
func initAdminUser() error {
	log := logger.GetAppLogger()
	cfg := global.MongoDB_ServerConfig

	if cfg.AdminPassword == "" {
		log.Info("ADMIN_PASSWORD not set, skipping admin user seed")
		return nil
	}

	userService, err := authservice.NewUserService()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = userService.FindOne(ctx, bson.M{"email": cfg.AdminEmail}, nil)
	if err == nil {
		log.Infof("Admin user %s already exists", cfg.AdminEmail)
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	admin := authmodels.User{
		Name:      "Administrator",
		Email:     cfg.AdminEmail,
		Password:  string(hashed),
		Role:      authmodels.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := userService.InsertOne(ctx, admin); err != nil {
		return err
	}
	log.Infof("Admin user %s created", cfg.AdminEmail)
	return nil
}

// initDefaultServices seed catalog dịch vụ cơ bản khi collection còn trống
func initDefaultServices() error {
	log := logger.GetAppLogger()

	catalog, err := catalogservice.NewCatalogService()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := catalog.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	defaults := []svcmodels.Service{
		{Name: "Signature Facial", Price: 650000, Duration: 60, Description: "Chăm sóc da mặt chuyên sâu", CreatedAt: now, UpdatedAt: now},
		{Name: "Hydrating Facial", Price: 550000, Duration: 60, Description: "Cấp ẩm phục hồi da", CreatedAt: now, UpdatedAt: now},
		{Name: "Brightening Treatment", Price: 750000, Duration: 75, Description: "Liệu trình làm sáng da", CreatedAt: now, UpdatedAt: now},
		{Name: "Dermaplaning", Price: 800000, Duration: 45, Description: "Tẩy da chết vật lý chuyên nghiệp", CreatedAt: now, UpdatedAt: now},
		{Name: "Full Body Massage", Price: 500000, Duration: 90, Description: "Massage toàn thân thư giãn", CreatedAt: now, UpdatedAt: now},
	}
	for _, svc := range defaults {
		if _, err := catalog.InsertOne(ctx, svc); err != nil {
			return err
		}
	}
	log.Infof("Seeded %d default services", len(defaults))
	return nil
}
