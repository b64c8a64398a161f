package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/geoattend/internal/flagx"
	"github.com/dmitrijs2005/geoattend/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the config file. Empty fields leave
// the current value untouched.
type fileConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	EndpointAddrHTTP            string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	DatabaseDSN                 string         `json:"database_dsn" yaml:"database_dsn"`
	LogLevel                    string         `json:"log_level" yaml:"log_level"`
	SecretKey                   string         `json:"secret_key" yaml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	AdminUser                   string         `json:"admin_user" yaml:"admin_user"`
	AdminPasswordHash           string         `json:"admin_password_hash" yaml:"admin_password_hash"`
	MatchThreshold              float64        `json:"match_threshold" yaml:"match_threshold"`
	BiometricRequired           *bool          `json:"biometric_required" yaml:"biometric_required"`
	Timezone                    string         `json:"timezone" yaml:"timezone"`
	StorageTimeout              timex.Duration `json:"storage_timeout" yaml:"storage_timeout"`
	HistoryLimit                int            `json:"history_limit" yaml:"history_limit"`
	ListAllLimit                int            `json:"list_all_limit" yaml:"list_all_limit"`
	S3RootUser                  string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region                    string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	TelegramBotToken            string         `json:"telegram_bot_token" yaml:"telegram_bot_token"`
	TelegramChatID              int64          `json:"telegram_chat_id" yaml:"telegram_chat_id"`
}

// parseFile overlays the file named by -c/-config onto config. Files ending
// in .yaml or .yml are decoded as YAML, anything else as JSON. An unreadable
// or malformed file panics.
func parseFile(config *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &fileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *fileConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AdminUser, c.AdminUser)
	setString(&config.AdminPasswordHash, c.AdminPasswordHash)
	setString(&config.Timezone, c.Timezone)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.TelegramBotToken, c.TelegramBotToken)

	if c.AccessTokenValidityDuration.Duration != 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.StorageTimeout.Duration != 0 {
		config.StorageTimeout = c.StorageTimeout.Duration
	}
	if c.MatchThreshold != 0 {
		config.MatchThreshold = c.MatchThreshold
	}
	if c.BiometricRequired != nil {
		config.BiometricRequired = *c.BiometricRequired
	}
	if c.HistoryLimit != 0 {
		config.HistoryLimit = c.HistoryLimit
	}
	if c.ListAllLimit != 0 {
		config.ListAllLimit = c.ListAllLimit
	}
	if c.TelegramChatID != 0 {
		config.TelegramChatID = c.TelegramChatID
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
