package middleware

import (
	"net/http" // HTTP status codes

	"canteen_system/internal/flash"   // Flash messages
	"canteen_system/internal/session" // Session store
	"canteen_system/internal/utils"   // Session token functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionCookie is the cookie carrying the signed session token
const SessionCookie = "canteen_session"

// SessionAuthMiddleware validates the session cookie and resolves the
// authenticated username. The cookie's token is verified first, then the
// session ID inside it is looked up in the store, so a logged-out session is
// rejected even if its cookie is replayed before the token expires.
func SessionAuthMiddleware(store session.Store, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie) // Read the session cookie
		// No cookie means no session
		if err != nil || tokenStr == "" {
			rejectToLogin(c)
			return
		}
		claims, err := utils.ParseSessionToken(tokenStr, secret) // Verify signature and expiry
		if err != nil {
			rejectToLogin(c)
			return
		}
		username, err := store.Get(c.Request.Context(), claims.SessionID) // Resolve the live session
		// Reject revoked or expired sessions, and tokens whose username does not match the session
		if err != nil || username != claims.Username {
			rejectToLogin(c)
			return
		}
		c.Set("username", username) // Store username in context
		c.Next()                    // Proceed to the next handler
	}
}

// rejectToLogin flashes a message and sends the caller to the login page
func rejectToLogin(c *gin.Context) {
	flash.Set(c, "You need to login first.")  // Surface a user-visible message
	c.Redirect(http.StatusFound, "/login")    // Redirect to the login page
	c.Abort()                                 // Stop the handler chain
}
