package api

import (
	"net/http" // HTTP status codes
	"time"     // Session TTL

	"canteen_system/internal/domain"     // Importing domain models
	"canteen_system/internal/flash"      // Flash messages
	"canteen_system/internal/middleware" // Session cookie name
	"canteen_system/internal/session"    // Session store
	"canteen_system/internal/utils"      // Session token functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// ShowRegisterHandler renders the registration form
func ShowRegisterHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "register.html", gin.H{"flash": flash.Take(c)})
	}
}

// RegisterHandler creates a new user account from the registration form
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username") // Submitted username
		password := c.PostForm("password") // Submitted password
		// Both fields are required
		if username == "" || password == "" {
			flash.Set(c, "Username and password are required.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		var existing domain.User // Duplicate username check, case-sensitive exact match
		if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
			// Username taken, send back to the form
			flash.Set(c, "Username already exists.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		// Hash the password before storing; the clear text is never retained
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.String(http.StatusInternalServerError, "Registration failed")
			return
		}
		user := domain.User{Username: username, Password: string(hash), Role: "user"} // New account, always role user
		// Attempt to create the user; the unique constraint backstops the check above
		if err := db.Create(&user).Error; err != nil {
			flash.Set(c, "Username already exists.")
			c.Redirect(http.StatusFound, "/register")
			return
		}
		// Log the registration
		logrus.WithFields(logrus.Fields{
			"username": username, // New account
		}).Info("User registered")
		flash.Set(c, "Registration successful. Please login.") // Confirmation message
		c.Redirect(http.StatusFound, "/login")                 // Send to the login page
	}
}

// ShowLoginHandler renders the login form
func ShowLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"flash": flash.Take(c)})
	}
}

// LoginHandler authenticates a user and starts a session
func LoginHandler(db *gorm.DB, store session.Store, secret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username") // Submitted username
		password := c.PostForm("password") // Submitted password
		var user domain.User               // Fetch user from database
		err := db.Where("username = ?", username).First(&user).Error
		// Compare the stored hash when the user exists
		if err == nil {
			err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
		}
		// Same message for unknown user and wrong password, so account existence never leaks
		if err != nil {
			c.HTML(http.StatusOK, "login.html", gin.H{"flash": "Invalid credentials"})
			return
		}
		sessionID, err := store.Create(c.Request.Context(), user.Username) // Create the server-side session
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"username": user.Username, // Authenticated user
				"error":    err.Error(),   // Error message
			}).Error("Failed to create session") // Log session failure
			c.String(http.StatusInternalServerError, "Login failed")
			return
		}
		// Sign the cookie token carrying the session reference
		token, err := utils.GenerateSessionToken(user.Username, sessionID, secret, ttl)
		if err != nil {
			c.String(http.StatusInternalServerError, "Login failed")
			return
		}
		// Set the session cookie; HttpOnly keeps it away from page scripts
		c.SetCookie(middleware.SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
		c.Redirect(http.StatusFound, "/") // Send to the menu
	}
}

// LogoutHandler destroys the session and clears the cookie
func LogoutHandler(store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Revoke the server-side session if the cookie still parses
		if tokenStr, err := c.Cookie(middleware.SessionCookie); err == nil {
			if claims, err := utils.ParseSessionToken(tokenStr, secret); err == nil {
				_ = store.Destroy(c.Request.Context(), claims.SessionID)
			}
		}
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true) // Clear the cookie
		c.Redirect(http.StatusFound, "/login")                              // Send to the login page
	}
}
