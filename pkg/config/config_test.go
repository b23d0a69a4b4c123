package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, DriverMongo, cfg.Storage.Driver)
	assert.Equal(t, "America/Sao_Paulo", cfg.App.Timezone)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 20*1024*1024, cfg.HTTP.BodyLimit())
	assert.False(t, cfg.JWT.Enabled())
	assert.False(t, cfg.Mongo.Transactions)
	assert.True(t, cfg.DB.AutoMigrate)
	require.NoError(t, cfg.Validate())
}

func TestFromViper_LeeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("MONGO_TRANSACTIONS", "true")
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t")
	t.Setenv("UPLOAD_BURST", "no-numero")

	v := viper.New()
	v.AutomaticEnv()
	cfg := fromViper(v)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.True(t, cfg.Mongo.Transactions)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, 5, cfg.Upload.Burst)
}

func TestValidate(t *testing.T) {
	cfg := fromViper(viper.New())
	cfg.Storage.Driver = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = fromViper(viper.New())
	cfg.App.Timezone = "Marte/Olympus"
	assert.Error(t, cfg.Validate())

	cfg = fromViper(viper.New())
	cfg.HTTP.BodyLimitMB = 0
	assert.Error(t, cfg.Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "almox", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/almox?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestAppConfig_Location(t *testing.T) {
	loc, err := AppConfig{Timezone: "America/Sao_Paulo"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	_, err = AppConfig{Timezone: "Marte/Olympus"}.Location()
	assert.Error(t, err)
}
