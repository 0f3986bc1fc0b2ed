package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azizul-haque1/plate-share-server/internal/config"
)

func TestOpenStore_UnknownBackend(t *testing.T) {
	st, err := openStore(context.Background(), &config.AppConfig{StoreBackend: "sqlite"}, nil)

	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), `unknown STORE_BACKEND "sqlite"`)
}

func TestOpenStore_InvalidPostgresConfig(t *testing.T) {
	st, err := openStore(context.Background(), &config.AppConfig{StoreBackend: config.BackendPostgres}, nil)

	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestOpenStore_InvalidMongoConfig(t *testing.T) {
	st, err := openStore(context.Background(), &config.AppConfig{StoreBackend: config.BackendMongo}, nil)

	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), "failed to connect to mongo")
}
