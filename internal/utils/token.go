package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the cookie the browser carries between requests.
const SessionCookieName = "awm_session"

// SessionTTL bounds how long a login stays valid.
const SessionTTL = time.Hour * 72

// Session is the typed login state carried by the signed token: exactly the
// user id, the display name, and the payment account id as of login.
type Session struct {
	UserID          uint
	Name            string
	StripeAccountID string
}

// GenerateSessionToken signs a session token with the session secret.
func GenerateSessionToken(s Session, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":           s.UserID,
		"name":              s.Name,
		"stripe_account_id": s.StripeAccountID,
		"exp":               time.Now().Add(SessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken verifies the signature and expiry and returns the
// session state baked into the token.
func ValidateSessionToken(tokenString, secret string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("invalid user id in session token")
	}

	s := &Session{UserID: uint(userIDFloat)}
	if name, ok := claims["name"].(string); ok {
		s.Name = name
	}
	if acct, ok := claims["stripe_account_id"].(string); ok {
		s.StripeAccountID = acct
	}
	return s, nil
}

// ExtractToken pulls the session token from the session cookie or, for API
// clients, a bearer Authorization header.
func ExtractToken(c *gin.Context) (string, error) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, nil
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("not signed in")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", fmt.Errorf("bearer token not found")
	}

	return strings.TrimPrefix(authHeader, bearerPrefix), nil
}

// TokenRemaining reports how long a token has until expiry, for sizing the
// revocation-list entry at logout. Unparseable tokens get the full TTL.
func TokenRemaining(tokenString, secret string) time.Duration {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return SessionTTL
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return SessionTTL
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return SessionTTL
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 {
		return time.Minute
	}
	return remaining
}
