package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_CONN_MAX_LIFETIME_SEC", "60")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("STORE_BACKEND", " Mongo ")
	t.Setenv("MONGO_DATABASE", "plates")
	t.Setenv("FEATURED_LIMIT", "3")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, time.Minute, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, BackendMongo, cfg.StoreBackend)
	assert.Equal(t, "plates", cfg.Mongo.Database)
	assert.Equal(t, 3, cfg.FeaturedLimit)
}

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_BACKEND", "CORS_ALLOW_ORIGINS", "FEATURED_LIMIT", "MINIO_ENDPOINT", "LOG_LEVEL", "DB_CONN_MAX_LIFETIME_SEC", "MONGO_CONNECT_TIMEOUT_SEC"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, 6, cfg.FeaturedLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.False(t, cfg.MinIO.Enabled())
}

func TestValidate(t *testing.T) {
	pg := DatabaseConfig{Host: "db", User: "plate", Name: "plate_share"}

	tests := []struct {
		name    string
		cfg     AppConfig
		wantErr []string
	}{
		{"postgres complete", AppConfig{StoreBackend: BackendPostgres, Database: pg}, nil},
		{"postgres missing host and name", AppConfig{StoreBackend: BackendPostgres, Database: DatabaseConfig{User: "plate"}},
			[]string{"DB_HOST is required", "DB_NAME is required"}},
		{"mongo complete", AppConfig{StoreBackend: BackendMongo, Mongo: MongoConfig{URI: "mongodb://m", Database: "d"}}, nil},
		{"mongo missing database", AppConfig{StoreBackend: BackendMongo, Mongo: MongoConfig{URI: "mongodb://m"}},
			[]string{"MONGO_URI and MONGO_DATABASE"}},
		{"unknown backend", AppConfig{StoreBackend: "sqlite"}, []string{`got "sqlite"`}},
		{"minio without bucket", AppConfig{StoreBackend: BackendPostgres, Database: pg, MinIO: MinIOConfig{Endpoint: "minio:9000"}},
			[]string{"MINIO_BUCKET is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestGetEnv_Trims(t *testing.T) {
	t.Setenv("TEST_ENV_VAR", "  value ")
	t.Setenv("TEST_BLANK_VAR", "   ")

	assert.Equal(t, "value", getEnv("TEST_ENV_VAR", "default"))
	assert.Equal(t, "default", getEnv("TEST_BLANK_VAR", "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvParsers(t *testing.T) {
	key := "TEST_PARSED_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))
	t.Setenv(key, "nope")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))
	assert.Equal(t, 123*time.Second, getEnvSeconds(key, time.Second))

	t.Setenv(key, "-4")
	assert.Equal(t, time.Second, getEnvSeconds(key, time.Second))

	t.Setenv(key, "")
	assert.Equal(t, 10, getEnvInt(key, 10))
}
