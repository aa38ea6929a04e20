package db

import (
	"fmt"

	"app/internal/config"
	"app/internal/domain/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	// DATABASE_URL があれば最優先で使う
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresSSLMode,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Sync は起動時にテーブルを作成/更新する。失敗したら起動させない。
func Sync(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return err
	}

	// 「1顧客につきCARTは1つ」をDB側でも守る（部分uniqueはタグで書けない）
	if err := gormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_order_active_cart ON "order" (customer_id) WHERE status = 'CART'`,
	).Error; err != nil {
		return err
	}

	return nil
}
