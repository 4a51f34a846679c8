package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs, loaded once at startup and
// passed by reference. Nothing reads the environment after LoadConfig.
type Config struct {
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	RedisAddr     string
	RedisPort     string
	RedisPassword string

	SessionSecret string

	StripeSecretKey string
	SendGridAPIKey  string
	SignWellAPIKey  string

	// BaseURL is the public origin used for checkout return routes and
	// onboarding links, e.g. https://www.agriwatermarketplace.com
	BaseURL string

	// PlatformFeeBps is the application fee in basis points (350 = 3.5%).
	PlatformFeeBps int64

	// TelemetryStation is the CDEC station code shown on the dashboard.
	TelemetryStation string

	UploadDir string

	// Log configuration
	LogLevel      string
	LogFilename   string
	LogMaxSize    int
	LogMaxBackups int
	LogMaxAge     int
	LogCompress   bool
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func (c *Config) RedisFullAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisAddr, c.RedisPort)
}

// Validate fails fast on missing required settings so a half-configured
// process never serves traffic.
func (c *Config) Validate() error {
	required := []struct {
		key string
		val string
	}{
		{"DB_HOST", c.DBHost},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"SESSION_SECRET", c.SessionSecret},
		{"STRIPE_SECRET_KEY", c.StripeSecretKey},
		{"SENDGRID_API_KEY", c.SendGridAPIKey},
		{"SIGNWELL_API_KEY", c.SignWellAPIKey},
		{"BASE_URL", c.BaseURL},
	}
	var missing []string
	for _, r := range required {
		if r.val == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		// Ignore error if .env file is not found
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return &Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getEnv("DB_PORT", "5432"),
		RedisAddr:     os.Getenv("REDIS_HOST"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SendGridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
		SignWellAPIKey:  os.Getenv("SIGNWELL_API_KEY"),

		BaseURL:        strings.TrimRight(os.Getenv("BASE_URL"), "/"),
		PlatformFeeBps: int64(getEnvAsInt("PLATFORM_FEE_BPS", 350)),

		TelemetryStation: getEnv("TELEMETRY_STATION", "SUC"),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),

		LogLevel:      getEnv("LOG_LEVEL", "INFO"),
		LogFilename:   getEnv("LOG_FILENAME", "logs/app.log"),
		LogMaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
		LogMaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
		LogMaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
		LogCompress:   getEnvAsBool("LOG_COMPRESS", true),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
