package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authRoleKey = "auth_role"

// AuthOptional parses a bearer token when one is sent and stores the role in
// the context. Requests without (or with invalid) tokens pass through; the
// API predates login and stays open for compatibility.
func AuthOptional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			raw := strings.TrimPrefix(header, "Bearer ")
			token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err == nil && token.Valid {
				if claims, ok := token.Claims.(jwt.MapClaims); ok {
					if role, ok := claims["role"].(string); ok {
						c.Set(authRoleKey, role)
					}
				}
			}
		}
		c.Next()
	}
}

// GetAuthRole returns the authenticated role, or "" for anonymous requests.
func GetAuthRole(c *gin.Context) string {
	if v, ok := c.Get(authRoleKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
