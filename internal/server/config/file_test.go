package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseFile_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTempJSON(t, dir, "geoattend.json", map[string]any{
		"endpoint_addr_grpc":             "www.example:9000",
		"endpoint_addr_http":             ":9001",
		"database_dsn":                   "postgres://x",
		"secret_key":                     "my_secret_key",
		"access_token_validity_duration": "30m",
		"admin_password_hash":            "$2a$10$hash",
		"match_threshold":                0.5,
		"biometric_required":             true,
		"timezone":                       "Europe/Riga",
		"storage_timeout":                1500000000,
		"history_limit":                  20,
		"list_all_limit":                 40,
		"s3_bucket":                      "bucket",
		"telegram_bot_token":             "tg",
		"telegram_chat_id":               -100123,
	})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, []string{"-config", path})

	assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
	assert.Equal(t, ":9001", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
	assert.Equal(t, "my_secret_key", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, "$2a$10$hash", cfg.AdminPasswordHash)
	assert.Equal(t, 0.5, cfg.MatchThreshold)
	assert.True(t, cfg.BiometricRequired)
	assert.Equal(t, "Europe/Riga", cfg.Timezone)
	assert.Equal(t, 1500*time.Millisecond, cfg.StorageTimeout)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, 40, cfg.ListAllLimit)
	assert.Equal(t, "bucket", cfg.S3Bucket)
	assert.Equal(t, "tg", cfg.TelegramBotToken)
	assert.Equal(t, int64(-100123), cfg.TelegramChatID)

	assert.Equal(t, "admin", cfg.AdminUser, "absent keys keep their value")
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func Test_parseFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geoattend.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
endpoint_addr_http: ":8443"
storage_timeout: 2s
biometric_required: false
`), 0o600))

	cfg := &Config{BiometricRequired: true, StorageTimeout: time.Second}
	parseFile(cfg, []string{"-c", path})

	assert.Equal(t, ":8443", cfg.EndpointAddrHTTP)
	assert.Equal(t, 2*time.Second, cfg.StorageTimeout)
	assert.False(t, cfg.BiometricRequired)
}

func Test_parseFile_NoFlagLeavesConfig(t *testing.T) {
	cfg := &Config{EndpointAddrGRPC: "defaults:1234", MatchThreshold: 0.6}
	parseFile(cfg, []string{"-a", ":1"})

	assert.Equal(t, &Config{EndpointAddrGRPC: "defaults:1234", MatchThreshold: 0.6}, cfg)
}

func Test_parseFile_Panics(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
	require.Panics(t, func() { parseFile(&Config{}, []string{"-config", bad}) })

	badYAML := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("storage_timeout: [oops\n"), 0o600))
	require.Panics(t, func() { parseFile(&Config{}, []string{"-c", badYAML}) })

	require.Panics(t, func() { parseFile(&Config{}, []string{"-c", filepath.Join(dir, "missing.json")}) })
}
