package db

import (
	"errors" // Error comparison

	"canteen_system/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	return db.AutoMigrate(&domain.User{}, &domain.Order{}, &domain.OrderItem{})
}

// EnsureAdmin seeds the single bootstrap admin account if it does not exist.
// Additional admins are never created through the application.
func EnsureAdmin(db *gorm.DB, password string) error {
	var user domain.User // Existing admin lookup
	err := db.Where("username = ?", "admin").First(&user).Error
	if err == nil {
		return nil // Admin already present, nothing to seed
	}
	// Any error other than "not found" is a real failure
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	// Hash the bootstrap password
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{Username: "admin", Password: string(hash), Role: "admin"} // Bootstrap admin account
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.Info("Bootstrap admin account created") // Log the seed
	return nil
}
