package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type sessionClaims struct {
	MemberID  string `json:"sub"`
	Email     string `json:"email"`
	ExpiresAt int64  `json:"exp"`
}

// authMiddleware verifies the bearer token and stashes the caller's member id
// on the request context. With no decode token configured the check is
// skipped, which is how local development runs.
func (m ApiHandler) authMiddleware(c *gin.Context) {
	if m.JwtDecodeToken == "" {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		returnErrorJsonCode(fmt.Errorf("missing authorization header"), c, 401)
		return
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims, err := parseSessionJWT(tokenStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid token: %w", err), c, 401)
		return
	}

	c.Set("memberID", claims.MemberID)
	c.Next()
}

func parseSessionJWT(jwtStr string, decodeToken string) (*sessionClaims, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("Failed to parse claims")
	}

	claims := sessionClaims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.MemberID = sub
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = int64(exp)
	}

	if claims.MemberID == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	if time.Now().UTC().Unix() > claims.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &claims, nil
}
