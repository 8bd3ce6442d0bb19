package configsdatabase

import (
	"fmt"
	"time"

	"kickconnect.net/configs"
	"kickconnect.net/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the MySQL connection and configures the pool.
// Pool capacity is fixed configuration (DB_POOL_SIZE), independent of
// request concurrency; every request checks a connection out of this pool
// and the sql layer returns it on all exit paths.
func InitDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		configs.GetEnv("DB_USER", "root"),
		configs.GetEnv("DB_PASSWORD", ""),
		configs.GetEnv("DB_HOST", "127.0.0.1"),
		configs.GetEnv("DB_PORT", "3306"),
		configs.GetEnv("DB_NAME", "kickconnect"),
	)

	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		configslog.Log.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		configslog.Log.Fatal("database handle unavailable", zap.Error(err))
	}

	poolSize := configs.GetEnvInt("DB_POOL_SIZE", 10)
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	db = gormDB
	configslog.SLog.Infof("database connection established (pool size %d)", poolSize)
}

// GetDB returns the shared *gorm.DB. InitDB must have run first.
func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("GetDB called before InitDB")
	}
	return db
}

// CloseDB drains the pool at shutdown.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("CloseDB: database handle unavailable", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("CloseDB: close failed", zap.Error(err))
	}
}
