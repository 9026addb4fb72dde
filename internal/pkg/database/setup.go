package database

import (
	"fmt"
	"log"
	"time"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

const maxRetries = 5
const retryDelay = 5 * time.Second

func SetupDatabase() {
	var err error
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                      dsn,
			DefaultStringSize:        256,
			DisableDatetimePrecision: true,
		}), &gorm.Config{})
		if err == nil {
			if err := Migrate(DB); err != nil {
				panic(err)
			}
			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}

// Migrate runs GORM auto-migration for all models. SQL migrations under migrations/
// handle data moves that AutoMigrate cannot express (see cmd/migrate).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Business{},
		&models.Assessment{},
		&models.Scorecard{},
		&models.ScorecardHighlight{},
		&models.Opportunity{},
		&models.Metric{},
		&models.Tool{},
		&models.ToolConnection{},
		&models.ToolConfiguration{},
		&models.ClientPortal{},
		&models.IntakeQuestion{},
		&models.IntakeAnswer{},
		&models.AuditLog{},
	)
}

// GetDB returns the shared database handle
func GetDB() *gorm.DB {
	return DB
}
