package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
)

const ContextAdminSubject = "adminSubject"

// AdminAuth accepts HS256 bearer tokens signed with secret that carry an
// expiry and a subject. With an empty secret every request is refused.
func AdminAuth(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) {
			httperr.Unauthorized(c, "admin_disabled", "Unauthorized")
			c.Abort()
		}
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Unauthorized")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Unauthorized")
			c.Abort()
			return
		}

		var claims jwt.RegisteredClaims
		token, err := parser.ParseWithClaims(parts[1], &claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Unauthorized")
			c.Abort()
			return
		}

		if claims.Subject == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextAdminSubject, claims.Subject)
		c.Next()
	}
}

// SignAdminToken issues a token AdminAuth accepts.
func SignAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
