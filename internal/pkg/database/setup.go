package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/yamamoto-dev/pointbox/app/models"
	"github.com/yamamoto-dev/pointbox/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// maxPoolConns bounds both open and idle connections. TiDB serverless
// closes idle connections aggressively, a small pool keeps reconnect
// churn low.
const maxPoolConns = 5

var DB *gorm.DB

func SetupDatabase() {
	var err error
	// "user:pass@tcp(127.0.0.1:4000)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "4000"),
		env.GetEnv("DB_NAME", ""),
	)
	if env.GetEnv("DB_SSL", "false") == "true" {
		// go-sql-driver verifies the server certificate with tls=true
		dsn += "&tls=true"
	}

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
		}), &gorm.Config{})
		if err == nil {
			if sqlDB, dbErr := DB.DB(); dbErr == nil {
				sqlDB.SetMaxOpenConns(maxPoolConns)
				sqlDB.SetMaxIdleConns(maxPoolConns)
			}

			DB.AutoMigrate(
				&models.Profile{},
				&models.PointProvider{},
				&models.PointAccount{},
				&models.PointSnapshot{},
				&models.Memo{},
			)

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// GetDB returns the shared gorm handle, nil before SetupDatabase ran.
func GetDB() *gorm.DB {
	return DB
}
