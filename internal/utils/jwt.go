package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// Session cookie claims
type SessionClaims struct {
	Username             string `json:"username"`   // Authenticated principal
	SessionID            string `json:"session_id"` // Server-side session reference
	jwt.RegisteredClaims        // Standard JWT claims
}

// GenerateSessionToken creates the signed token carried by the session cookie.
// The token holds only the username and a session ID; the server-side store
// decides whether the session is still live, so logout revokes immediately.
func GenerateSessionToken(username, sessionID, secret string, ttl time.Duration) (string, error) {
	// Set token claims
	claims := SessionClaims{
		Username:  username,  // Authenticated principal
		SessionID: sessionID, // Server-side session reference
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)), // Token expires with the session
			IssuedAt:  jwt.NewNumericDate(time.Now()),          // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseSessionToken parses and validates a session token string
func ParseSessionToken(tokenStr, secret string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
