package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envFileVar = "GEOATTEND_ENV_FILE"

var lookupEnv = os.LookupEnv

// parseEnv overlays GEOATTEND_* variables onto config. A dotenv file
// (GEOATTEND_ENV_FILE, default ".env") is loaded first if it exists; it never
// overrides variables that are already set. Malformed values panic.
func parseEnv(config *Config) {
	envFile := ".env"
	if v, ok := lookupEnv(envFileVar); ok && v != "" {
		envFile = v
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&config.EndpointAddrGRPC, "GEOATTEND_GRPC_ADDR")
	envString(&config.EndpointAddrHTTP, "GEOATTEND_HTTP_ADDR")
	envString(&config.DatabaseDSN, "GEOATTEND_DATABASE_DSN")
	envString(&config.LogLevel, "GEOATTEND_LOG_LEVEL")
	envString(&config.SecretKey, "GEOATTEND_SECRET_KEY")
	envString(&config.AdminUser, "GEOATTEND_ADMIN_USER")
	envString(&config.AdminPasswordHash, "GEOATTEND_ADMIN_PASSWORD_HASH")
	envString(&config.Timezone, "GEOATTEND_TIMEZONE")
	envString(&config.S3RootUser, "GEOATTEND_S3_USER")
	envString(&config.S3RootPassword, "GEOATTEND_S3_PASSWORD")
	envString(&config.S3Bucket, "GEOATTEND_S3_BUCKET")
	envString(&config.S3Region, "GEOATTEND_S3_REGION")
	envString(&config.S3BaseEndpoint, "GEOATTEND_S3_ENDPOINT")
	envString(&config.TelegramBotToken, "GEOATTEND_TELEGRAM_TOKEN")

	envDuration(&config.AccessTokenValidityDuration, "GEOATTEND_ACCESS_TOKEN_TTL")
	envDuration(&config.StorageTimeout, "GEOATTEND_STORAGE_TIMEOUT")

	if v, ok := lookupEnv("GEOATTEND_MATCH_THRESHOLD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		config.MatchThreshold = f
	}
	if v, ok := lookupEnv("GEOATTEND_BIOMETRIC_REQUIRED"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.BiometricRequired = b
	}
	if v, ok := lookupEnv("GEOATTEND_TELEGRAM_CHAT_ID"); ok {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			panic(err)
		}
		config.TelegramChatID = id
	}
}

func envString(dst *string, key string) {
	if v, ok := lookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envDuration(dst *time.Duration, key string) {
	v, ok := lookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
