package flash

import (
	"github.com/gin-gonic/gin" // Gin web framework
)

// cookieName is the one-shot message cookie
const cookieName = "canteen_flash"

// Set stores a one-shot message shown on the next rendered page
func Set(c *gin.Context, msg string) {
	// Short-lived cookie: it only needs to survive one redirect
	c.SetCookie(cookieName, msg, 60, "/", "", false, true)
}

// Take returns the pending flash message, if any, and clears it
func Take(c *gin.Context) string {
	msg, err := c.Cookie(cookieName) // Read the pending message
	if err != nil || msg == "" {
		return "" // Nothing pending
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true) // Clear it so it shows once
	return msg
}
