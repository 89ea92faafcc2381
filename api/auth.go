package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Session management lives with the external auth provider; the API only
// decodes the provider's HS256 token to learn who owns a template.

type sessionJWT struct {
	Audience  string  `json:"aud"`
	Email     *string `json:"email"`
	ExpiresAt int64   `json:"exp"`
	IssuedAt  int64   `json:"iat"`
	Issuer    string  `json:"iss"`
	Role      string  `json:"role"`
	SessionID string  `json:"session_id"`
	Subject   string  `json:"sub"`
}

func parseSessionJWT(jwtStr string, decodeToken string) (*sessionJWT, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(decodeToken), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("failed to parse claims")
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return nil, fmt.Errorf("error marshalling claims: %w", err)
	}

	var parsedJWT sessionJWT
	if err := json.Unmarshal(claimsJSON, &parsedJWT); err != nil {
		return nil, fmt.Errorf("error unmarshalling into JWT struct: %w", err)
	}

	if time.Now().UTC().Unix() > parsedJWT.ExpiresAt {
		return nil, fmt.Errorf("jwt is expired")
	}

	return &parsedJWT, nil
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

func (m ApiHandler) requireAuth(c *gin.Context) {
	tokenStr, ok := bearerToken(c)
	if !ok {
		returnErrorJsonCode(fmt.Errorf("must be logged in"), c, 401)
		return
	}

	parsedJWT, err := parseSessionJWT(tokenStr, m.JwtDecodeToken)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	c.Set("userAccountID", parsedJWT.Subject)
	c.Next()
}
