package middleware

import (
	"net/http" // HTTP status codes

	"canteen_system/internal/domain" // Importing domain models
	"canteen_system/internal/flash"  // Flash messages

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// AdminOnlyMiddleware checks the user's role from the database on each
// request. The role is never cached in the session token: a role change takes
// effect on the next request, not the next login.
func AdminOnlyMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, exists := c.Get("username") // Get username from context
		// Check if username exists in context
		if !exists {
			// If not, the session middleware did not run; send to login
			flash.Set(c, "You need to login first.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			// If user not found or any error, deny access
			rejectToHome(c)
			return
		}
		// Check if user role is admin
		if user.Role != "admin" {
			// If not admin, deny access
			rejectToHome(c)
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}

// rejectToHome flashes an access denied message and sends the caller home
func rejectToHome(c *gin.Context) {
	flash.Set(c, "Access denied.")    // Surface a user-visible message
	c.Redirect(http.StatusFound, "/") // Redirect to the home page
	c.Abort()                         // Stop the handler chain
}
