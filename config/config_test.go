package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: authgate-test
  log:
    level: info
http:
  port: 9090
redis:
  server: cache.internal
  port: 6380
  keyPrefix: "authgate:"
secretKey:
  access: yaml-secret
auth:
  bcryptCost: 10
`

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("REDIS_KEYPREFIX", "override:")
	t.Setenv("AUTH_ACCESSTOKENTTL", "30m")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "authgate-test", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "override:", cfg.Redis.KeyPrefix)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr())
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{
		Postgres: &postgres.DBConn{},
		Redis:    &RedisConfig{Server: "localhost", Port: 6379},
	}

	require.NoError(t, applyDefaults(cfg))
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAPIBasePath, cfg.API.BasePath)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
}

func TestApplyDefaults_RequiresBackends(t *testing.T) {
	err := applyDefaults(&Config{Redis: &RedisConfig{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")

	err = applyDefaults(&Config{Postgres: &postgres.DBConn{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}
