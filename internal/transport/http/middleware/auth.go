package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

// UsernameKey is the gin context key the gate stores the authenticated
// username under.
const UsernameKey = "username"

// tokenValidator is the slice of auth.TokenService the gate needs.
type tokenValidator interface {
	Validate(raw string) (string, error)
}

// Auth validates the session token carried in the auth-token header
// (falling back to Authorization) and sets the authenticated username in
// the gin context. The header may carry a scheme prefix like "Bearer";
// the token is whatever comes after the last whitespace.
func Auth(tokens tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("auth-token")
		if header == "" {
			header = c.GetHeader("Authorization")
		}

		pieces := strings.Fields(header)
		if len(pieces) == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		username, err := tokens.Validate(pieces[len(pieces)-1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set(UsernameKey, username)
		c.Next()
	}
}
