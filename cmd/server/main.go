package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Session TTL

	"canteen_system/internal/api"        // Custom package for API handlers
	"canteen_system/internal/config"     // Custom package for configuration
	"canteen_system/internal/db"         // Custom package for migrations and seeding
	"canteen_system/internal/middleware" // Custom package for middleware
	"canteen_system/internal/session"    // Custom package for the session store

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// The session secret signs every session cookie; refuse to run without one
	if cfg.SessionSecret == "" {
		logrus.Fatal("SESSION_SECRET must be set")
	}
	// The bootstrap admin password should come from the environment too
	if cfg.AdminPassword == "" {
		logrus.Warn("ADMIN_PASSWORD not set, using default bootstrap password")
		cfg.AdminPassword = "adminpass"
	}

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Migrate the schema and seed the bootstrap admin account
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := db.EnsureAdmin(gormDB, cfg.AdminPassword); err != nil {
		logrus.Fatalf("failed to seed admin account: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Sessions live in Redis and expire after the configured TTL
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Hour
	store := session.NewRedisStore(redisClient, sessionTTL)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Load the HTML templates for the presentation layer
	r.LoadHTMLGlob("web/templates/*.html")

	// Auth routes
	r.GET("/register", api.ShowRegisterHandler())                              // Registration form
	r.POST("/register", api.RegisterHandler(gormDB))                           // Registration endpoint
	r.GET("/login", api.ShowLoginHandler())                                    // Login form
	r.POST("/login", api.LoginHandler(gormDB, store, cfg.SessionSecret, sessionTTL)) // Login endpoint
	r.GET("/logout", api.LogoutHandler(store, cfg.SessionSecret))              // Logout endpoint

	// User routes (protected by the session gate)
	userGroup := r.Group("/")
	userGroup.Use(middleware.SessionAuthMiddleware(store, cfg.SessionSecret))
	userGroup.GET("", api.IndexHandler())               // Menu page
	userGroup.POST("/order", api.PlaceOrderHandler(gormDB)) // Place order endpoint
	userGroup.GET("/myorders", api.MyOrdersHandler(gormDB)) // Own order history endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.SessionAuthMiddleware(store, cfg.SessionSecret), middleware.AdminOnlyMiddleware(gormDB))
	adminGroup.GET("/orders", api.AdminOrdersHandler(gormDB)) // List all orders endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
