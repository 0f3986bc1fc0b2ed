// Package config reads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends selectable with STORE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// DatabaseConfig is the PostgreSQL side of the store.
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// MongoConfig is the MongoDB side of the store.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// MinIOConfig locates the bucket that holds food photos.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether photo storage was configured at all.
func (c MinIOConfig) Enabled() bool {
	return c.Endpoint != ""
}

// AppConfig is everything the server needs at startup.
type AppConfig struct {
	Port          string
	StoreBackend  string
	LogLevel      string
	CORSOrigins   string
	FeaturedLimit int
	Database      DatabaseConfig
	Mongo         MongoConfig
	MinIO         MinIOConfig
}

// Load reads the configuration from the environment. Empty variables count as unset.
// A .env file is picked up when the binary imports github.com/joho/godotenv/autoload;
// real environment variables win over it.
func Load() *AppConfig {
	return &AppConfig{
		Port:          getEnv("PORT", "3000"),
		StoreBackend:  strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   getEnv("CORS_ALLOW_ORIGINS", "*"),
		FeaturedLimit: getEnvInt("FEATURED_LIMIT", 6),
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", ""),
			Password:        os.Getenv("DB_PASSWORD"),
			Name:            getEnv("DB_NAME", ""),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvSeconds("DB_CONN_MAX_LIFETIME_SEC", 5*time.Minute),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DATABASE", "plate_share"),
			ConnectTimeout: getEnvSeconds("MONGO_CONNECT_TIMEOUT_SEC", 10*time.Second),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Bucket:    getEnv("MINIO_BUCKET", "plate-share"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

// Validate reports every setting the chosen backend cannot start without.
func (c *AppConfig) Validate() error {
	var errs []error
	switch c.StoreBackend {
	case BackendPostgres:
		for env, v := range map[string]string{"DB_HOST": c.Database.Host, "DB_USER": c.Database.User, "DB_NAME": c.Database.Name} {
			if v == "" {
				errs = append(errs, fmt.Errorf("%s is required for the postgres backend", env))
			}
		}
	case BackendMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			errs = append(errs, errors.New("MONGO_URI and MONGO_DATABASE are required for the mongo backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendMongo, c.StoreBackend))
	}
	if c.MinIO.Enabled() && c.MinIO.Bucket == "" {
		errs = append(errs, errors.New("MINIO_BUCKET is required when MINIO_ENDPOINT is set"))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	i, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return i
}

// getEnvSeconds reads a whole number of seconds.
func getEnvSeconds(key string, def time.Duration) time.Duration {
	n := getEnvInt(key, -1)
	if n < 0 {
		return def
	}
	return time.Duration(n) * time.Second
}
