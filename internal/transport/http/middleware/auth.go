package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"learn-with-jiji/internal/pkg/jwtutil"
	"learn-with-jiji/internal/transport/http/response"
)

const ContextIdentityKey = "identity"

// Identity is the resolved caller. Mock marks identities synthesized in
// degraded mode; those never reference a real profile row.
type Identity struct {
	ID    string
	Email string
	Role  string
	Mock  bool
}

func mockIdentity() Identity {
	return Identity{
		ID:    "mock-user-id",
		Email: "dev@learnwithjiji.local",
		Role:  "authenticated",
		Mock:  true,
	}
}

// Auth resolves the bearer token to an identity and stores it in the gin
// context. With no verification secret configured it degrades: requests
// without a header get the fixed mock identity, requests with one only pass
// a structural check.
func Auth(jwtSecret string, authConfigured bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			if !authConfigured {
				c.Set(ContextIdentityKey, mockIdentity())
				c.Next()
				return
			}
			response.Error(c, http.StatusUnauthorized, "missing authorization header, expected 'Authorization: Bearer <token>'")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			response.Error(c, http.StatusUnauthorized, "invalid authorization scheme, expected 'Authorization: Bearer <token>'")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "empty bearer token")
			c.Abort()
			return
		}

		if !authConfigured {
			if !wellFormedToken(token) {
				response.Error(c, http.StatusUnauthorized, "malformed bearer token")
				c.Abort()
				return
			}
			c.Set(ContextIdentityKey, mockIdentity())
			c.Next()
			return
		}

		claims, err := jwtutil.ParseToken(jwtSecret, token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		identity := Identity{
			ID:    claims.Subject,
			Email: claims.Email,
			Role:  claims.Role,
		}
		if identity.Role == "" {
			identity.Role = "authenticated"
		}
		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// wellFormedToken checks the three dot-separated segment shape of a JWT
// without verifying anything about it.
func wellFormedToken(token string) bool {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false
	}
	for _, p := range parts {
		if p == "" {
			return false
		}
	}
	return true
}

// IdentityFrom pulls the resolved identity out of the gin context.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
