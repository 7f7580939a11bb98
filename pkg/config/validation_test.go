package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

func TestValidate_DefaultConfig(t *testing.T) {
	require.NoError(t, Validate(validConfig()))
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "TRACE"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Level")
}

func TestValidate_RejectsUnknownStoreType(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Type = "redis"

	assert.Error(t, Validate(cfg))
}

func TestValidate_S3RequiresBucket(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Type = "s3"
	cfg.Store.S3 = map[string]any{"region": "eu-west-1"}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket")

	cfg.Store.S3["bucket"] = "my-bucket"
	assert.NoError(t, Validate(cfg))
}

func TestValidate_ZooKeeperCredentialsComeTogether(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Type = "zookeeper"
	cfg.Store.ZooKeeper["username"] = "alice"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username and password")

	cfg.Store.ZooKeeper["password"] = "secret"
	assert.NoError(t, Validate(cfg))
}
