package db

import (
	"fmt"

	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQLite はプロセス内だけのSQLite（メモリ）を開いてテーブルを作る。
// 呼ぶたびに別のDBになる。接続を閉じると中身は消える。
func OpenSQLite() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:storefront-%s?mode=memory&cache=shared", uuid.NewString())

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// 接続は1本だけ。Tx は1つずつ順番に走り、接続が生きている間はDBも消えない
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := gdb.AutoMigrate(
		&CartRow{},
		&CartItemRow{},
		&OrderRow{},
		&OrderItemRow{},
		&DiscountCodeRow{},
		&model.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}
