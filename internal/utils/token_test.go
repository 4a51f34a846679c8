package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(Session{
		UserID:          42,
		Name:            "Ada Farmer",
		StripeAccountID: "acct_1",
	}, "secret")
	assert.NoError(t, err)

	s, err := ValidateSessionToken(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, uint(42), s.UserID)
	assert.Equal(t, "Ada Farmer", s.Name)
	assert.Equal(t, "acct_1", s.StripeAccountID)
}

func TestValidateSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(Session{UserID: 1}, "secret")
	assert.NoError(t, err)

	_, err = ValidateSessionToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateSessionTokenGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not.a.token", "secret")
	assert.Error(t, err)
}

func testContext(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestExtractTokenPrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
	req.Header.Set("Authorization", "Bearer header-token")

	token, err := ExtractToken(testContext(req))
	assert.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestExtractTokenBearerFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")

	token, err := ExtractToken(testContext(req))
	assert.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

func TestExtractTokenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := ExtractToken(testContext(req))
	assert.Error(t, err)

	req.Header.Set("Authorization", "Basic abc")
	_, err = ExtractToken(testContext(req))
	assert.Error(t, err)
}

func TestTokenRemaining(t *testing.T) {
	token, err := GenerateSessionToken(Session{UserID: 1}, "secret")
	assert.NoError(t, err)

	remaining := TokenRemaining(token, "secret")
	assert.Greater(t, remaining, time.Hour*71)
	assert.LessOrEqual(t, remaining, SessionTTL)

	assert.Equal(t, SessionTTL, TokenRemaining("garbage", "secret"))
}
