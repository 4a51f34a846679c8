package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Danielrod221/agriwater-live-app/config"
	"github.com/Danielrod221/agriwater-live-app/internal/api/v1/auth"
	"github.com/Danielrod221/agriwater-live-app/internal/database"
	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/Danielrod221/agriwater-live-app/internal/services"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB() {
	// Use in-memory SQLite for testing
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.User{}, &models.Listing{}, &models.Offer{})
	err = db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Offer{})
	if err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
}

func testConfig() *config.Config {
	return &config.Config{SessionSecret: "test-secret", BaseURL: "https://awm.test", PlatformFeeBps: 350}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	v1 := router.Group("/api/v1")
	auth.RegisterRoutes(v1, cfg)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignup(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	services.Init(cfg, nil, nil, nil, nil, nil)
	router := setupRouter(cfg)

	w := postJSON(router, "/api/v1/auth/signup", gin.H{
		"name":           "Ada Farmer",
		"email":          "ada@example.com",
		"password":       "plowshares1",
		"phone":          "555-0100",
		"water_district": "Tule River",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp utils.Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Status)

	// Session established via cookie
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == utils.SessionCookieName && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a session cookie")
}

func TestSignupDuplicateEmail(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	services.Init(cfg, nil, nil, nil, nil, nil)
	router := setupRouter(cfg)

	body := gin.H{"name": "Ada", "email": "dup@example.com", "password": "plowshares1"}
	assert.Equal(t, http.StatusCreated, postJSON(router, "/api/v1/auth/signup", body).Code)

	w := postJSON(router, "/api/v1/auth/signup", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Conflict responses carry no session cookie
	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, utils.SessionCookieName, c.Name)
	}

	var count int64
	database.DB.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestSignupValidation(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	services.Init(cfg, nil, nil, nil, nil, nil)
	router := setupRouter(cfg)

	w := postJSON(router, "/api/v1/auth/signup", gin.H{"name": "Ada", "email": "not-an-email", "password": "plowshares1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(router, "/api/v1/auth/signup", gin.H{"name": "Ada", "email": "ada@example.com", "password": "short"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	setupTestDB()
	cfg := testConfig()
	services.Init(cfg, nil, nil, nil, nil, nil)
	router := setupRouter(cfg)

	postJSON(router, "/api/v1/auth/signup", gin.H{"name": "Ada", "email": "ada@example.com", "password": "plowshares1"})

	w := postJSON(router, "/api/v1/auth/login", gin.H{"email": "ada@example.com", "password": "plowshares1"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data auth.SessionResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "Ada", resp.Data.Name)

	w = postJSON(router, "/api/v1/auth/login", gin.H{"email": "ada@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
