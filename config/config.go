package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	Language   string
	ZoomDelta  float64
	ExportPath string

	// Device position reported by the locator. When unset the app behaves
	// as if location permission was denied.
	LocationLat *float64
	LocationLon *float64

	ListenAddr       string
	Store            string
	DBHost           string
	DBPort           int
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	DBConnectRetries int
	MongoURI         string
	MongoDatabase    string
}

func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:       "http://172.16.12.157:3000",
		Language:         "en",
		ZoomDelta:        0.01,
		ExportPath:       "output/markers.csv",
		ListenAddr:       ":3000",
		Store:            "memory",
		DBHost:           "localhost",
		DBPort:           5432,
		DBUser:           "postgres",
		DBPassword:       "postgres",
		DBName:           "immo_map",
		DBSSLMode:        "disable",
		DBConnectRetries: 5,
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "immo_map",
	}
}

// Load reads an optional .env file, then overlays environment variables on
// top of DefaultConfig.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	setString(&cfg.APIBaseURL, "MARKERS_API_URL")
	setString(&cfg.Language, "APP_LANG")
	setString(&cfg.ExportPath, "EXPORT_PATH")
	setString(&cfg.ListenAddr, "LISTEN_ADDR")
	setString(&cfg.Store, "MARKER_STORE")
	setString(&cfg.DBHost, "DB_HOST")
	setString(&cfg.DBUser, "DB_USER")
	setString(&cfg.DBPassword, "DB_PASSWORD")
	setString(&cfg.DBName, "DB_NAME")
	setString(&cfg.DBSSLMode, "DB_SSLMODE")
	setString(&cfg.MongoURI, "MONGO_URI")
	setString(&cfg.MongoDatabase, "MONGO_DB")

	if err := setInt(&cfg.DBPort, "DB_PORT"); err != nil {
		return nil, err
	}
	if err := setInt(&cfg.DBConnectRetries, "DB_CONNECT_RETRIES"); err != nil {
		return nil, err
	}
	if err := setFloat(&cfg.ZoomDelta, "MAP_ZOOM_DELTA"); err != nil {
		return nil, err
	}

	lat, err := optionalFloat("LOCATION_LAT")
	if err != nil {
		return nil, err
	}
	lon, err := optionalFloat("LOCATION_LON")
	if err != nil {
		return nil, err
	}
	if lat != nil && lon != nil {
		cfg.LocationLat, cfg.LocationLon = lat, lon
	}

	return cfg, nil
}

// PostgresDSN builds the connection string for the backend's Postgres store.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	f, err := optionalFloat(key)
	if err != nil || f == nil {
		return err
	}
	*dst = *f
	return nil
}

func optionalFloat(key string) (*float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &f, nil
}
