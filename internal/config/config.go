package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Firebase    FirebaseConfig
	Roster      RosterConfig
	Geocoder    GeocoderConfig
	Forecast    ForecastConfig
}

// FirebaseConfig holds identity provider and realtime database configuration
type FirebaseConfig struct {
	CredentialsFile string
	DatabaseURL     string
}

// RosterConfig holds user roster filtering configuration
type RosterConfig struct {
	InternalDomainSuffix string
	PageSize             int
}

// GeocoderConfig holds geocoding service configuration
type GeocoderConfig struct {
	BaseURL     string
	UserAgent   string
	MinInterval time.Duration
}

// ForecastConfig holds weather forecast service configuration
type ForecastConfig struct {
	BaseURL  string
	Days     int
	CacheTTL time.Duration
	RetryMax int
}

// Load loads configuration from environment variables. Values are read once
// at process start; handlers never re-read the environment per request.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8082")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "./serviceAccountKey.json")
	viper.SetDefault("FIREBASE_DATABASE_URL", "")
	viper.SetDefault("INTERNAL_DOMAIN_SUFFIX", "@agrosense.internal")
	viper.SetDefault("ROSTER_PAGE_SIZE", 100)
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "irrigation-api/1.0")
	viper.SetDefault("GEOCODER_MIN_INTERVAL_MS", 1000)
	viper.SetDefault("FORECAST_BASE_URL", "https://api.open-meteo.com")
	viper.SetDefault("FORECAST_DAYS", 1)
	viper.SetDefault("FORECAST_CACHE_TTL_MINUTES", 60)
	viper.SetDefault("FORECAST_RETRY_MAX", 5)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Firebase: FirebaseConfig{
			CredentialsFile: viper.GetString("FIREBASE_CREDENTIALS_FILE"),
			DatabaseURL:     viper.GetString("FIREBASE_DATABASE_URL"),
		},
		Roster: RosterConfig{
			InternalDomainSuffix: viper.GetString("INTERNAL_DOMAIN_SUFFIX"),
			PageSize:             viper.GetInt("ROSTER_PAGE_SIZE"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:     viper.GetString("GEOCODER_BASE_URL"),
			UserAgent:   viper.GetString("GEOCODER_USER_AGENT"),
			MinInterval: time.Duration(viper.GetInt("GEOCODER_MIN_INTERVAL_MS")) * time.Millisecond,
		},
		Forecast: ForecastConfig{
			BaseURL:  viper.GetString("FORECAST_BASE_URL"),
			Days:     viper.GetInt("FORECAST_DAYS"),
			CacheTTL: time.Duration(viper.GetInt("FORECAST_CACHE_TTL_MINUTES")) * time.Minute,
			RetryMax: viper.GetInt("FORECAST_RETRY_MAX"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
