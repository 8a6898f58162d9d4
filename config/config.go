package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string // development, production
	JWTKey    string
	SaltRound int

	EmailSender string
	Password    string // SMTP Password

	MidtransServerKey string
	MidtransEnv       string // sandbox, production

	AnalyticsURL    string // external analytics collector for UTM events
	AnalyticsAPIKey string

	BackupDir           string
	MaintenanceFile     string
	MaintenanceConfFile string

	SiteURL string // canonical base URL for sitemap/robots
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("APP_ENV", "development"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("EMAIL_PASSWORD", ""),

		MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
		MidtransEnv:       getEnv("MIDTRANS_ENV", "sandbox"),

		AnalyticsURL:    getEnv("ANALYTICS_URL", ""),
		AnalyticsAPIKey: getEnv("ANALYTICS_API_KEY", ""),

		BackupDir:           getEnv("BACKUP_DIR", "./backups"),
		MaintenanceFile:     getEnv("MAINTENANCE_FLAG_FILE", ".maintenance"),
		MaintenanceConfFile: getEnv("MAINTENANCE_CONFIG_FILE", "maintenance.json"),

		SiteURL: getEnv("SITE_URL", "https://egrowacademy.com"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.Env == "production" && AppConfig.MidtransServerKey == "" {
		log.Println("Warning: MIDTRANS_SERVER_KEY is empty. Paid checkout will fail.")
	}
}

// IsProduction reports whether the app runs with production settings.
// Error responses hide diagnostic details when this is true.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
