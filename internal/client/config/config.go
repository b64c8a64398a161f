// Package config loads settings for the geoattend command-line client.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the CLI.
//
// Token is an admin access token reused between invocations; it is normally
// obtained with the login command and may be supplied through
// GEOATTEND_TOKEN instead.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	Token              string
	ReportsDir         string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
	c.ReportsDir = "reports"
}

var lookupEnv = os.LookupEnv

func parseEnv(cfg *Config) {
	if v, ok := lookupEnv("GEOATTEND_TOKEN"); ok {
		cfg.Token = v
	}
	if v, ok := lookupEnv("GEOATTEND_SERVER"); ok && v != "" {
		cfg.ServerEndpointAddr = v
	}
}

// LoadConfig builds a Config from defaults, then the -c/-config file, then
// the environment and finally command-line flags.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
