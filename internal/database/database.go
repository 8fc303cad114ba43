package database

import (
	"fmt"
	"log"
	"time"

	"github.com/BTulkas/Foster-Finder/internal/config"
	"github.com/BTulkas/Foster-Finder/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Successfully connected to database")

	return db
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Area{},
		&models.FosterSpecies{},
		&models.Clinic{},
		&models.Volunteer{},
		&models.PhoneNumber{},
		&models.RefreshToken{},
		&models.AuditLog{},
	)
}

// SeedReferenceData inserts the configured areas and species if missing.
// Existing rows are left untouched.
func SeedReferenceData(db *gorm.DB, cfg *config.Config) error {
	for _, area := range cfg.Seed.Areas {
		record := models.Area{Area: area}
		if err := db.FirstOrCreate(&record, models.Area{Area: area}).Error; err != nil {
			return fmt.Errorf("failed to seed area %q: %w", area, err)
		}
	}

	for _, species := range cfg.Seed.Species {
		record := models.FosterSpecies{Species: species}
		if err := db.FirstOrCreate(&record, models.FosterSpecies{Species: species}).Error; err != nil {
			return fmt.Errorf("failed to seed species %q: %w", species, err)
		}
	}

	return nil
}
