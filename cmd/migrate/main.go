package main

import (
	"canteen_system/internal/config" // Custom import path (Config)
	"canteen_system/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Database Source Name (DSN) for MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{}) // Open a connection to the database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	// Create tables, foreign keys and indexes
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	// Seed the bootstrap admin account if absent
	password := cfg.AdminPassword
	if password == "" {
		logrus.Warn("ADMIN_PASSWORD not set, using default bootstrap password")
		password = "adminpass"
	}
	if err := db.EnsureAdmin(gormDB, password); err != nil {
		logrus.Fatalf("failed to seed admin account: %v", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
}
