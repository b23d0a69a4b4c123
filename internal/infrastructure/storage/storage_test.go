package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado-api/pkg/config"
	"github.com/jhoicas/almoxarifado-api/pkg/logger"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}
	b, err := Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.DriverMemory, b.Driver)
	assert.NotNil(t, b.Products)
	assert.NotNil(t, b.TxRunner)
	assert.NoError(t, b.Close(context.Background()))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}
	_, err := Open(context.Background(), cfg, logger.Nop())
	assert.Error(t, err)
}
