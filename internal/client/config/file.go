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

type fileConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr" yaml:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	ReportsDir         string         `json:"reports_dir" yaml:"reports_dir"`
}

// parseFile overlays the file named by -c/-config. YAML is chosen by
// extension, JSON otherwise. Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	if fc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = fc.ServerEndpointAddr
	}
	if fc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.ReportsDir != "" {
		cfg.ReportsDir = fc.ReportsDir
	}
}
