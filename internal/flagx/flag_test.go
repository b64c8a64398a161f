package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	server := []string{"-a", "-w", "-d", "-z"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "server flags picked out of a mixed command line",
			args:    []string{"-c", "geoattend.yaml", "-a", ":50051", "-w", ":8080", "-v"},
			allowed: server,
			want:    []string{"-a", ":50051", "-w", ":8080"},
		},
		{
			name:    "equals form keeps the whole token",
			args:    []string{"-z=Asia/Tokyo", "-d", "postgres://db/geoattend"},
			allowed: server,
			want:    []string{"-z=Asia/Tokyo", "-d", "postgres://db/geoattend"},
		},
		{
			name:    "cli operands are not flag values",
			args:    []string{"-k", "token", "clock-in", "E1001", "morning", "56.9", "24.1"},
			allowed: []string{"-a", "-k"},
			want:    []string{"-k", "token"},
		},
		{
			name:    "negative coordinate after a flag is not its value",
			args:    []string{"-t", "-24.1"},
			allowed: []string{"-t"},
			want:    []string{"-t"},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"status", "-a"},
			allowed: server,
			want:    []string{"-a"},
		},
		{
			name:    "value that looks like a flag in equals form",
			args:    []string{"--config=--odd.json"},
			allowed: []string{"--config"},
			want:    []string{"--config=--odd.json"},
		},
		{
			name:    "repeated flag preserved in order",
			args:    []string{"-a", ":1", "-a", ":2"},
			allowed: server,
			want:    []string{"-a", ":1", "-a", ":2"},
		},
		{
			name:    "nothing allowed matches",
			args:    []string{"-x", "1", "--y=2", "history"},
			allowed: server,
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: server,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short -c with value", args: []string{"-c", "/etc/geoattend.yaml"}, want: "/etc/geoattend.yaml"},
		{name: "long -config with value", args: []string{"-config", "/path/long.json"}, want: "/path/long.json"},
		{name: "equals form", args: []string{"--config=/path/eq.yml", "-a", ":9090"}, want: "/path/eq.yml"},
		{name: "unknown flags are ignored", args: []string{"-x", "1", "-y", "2"}, want: ""},
		{name: "multiple flags, last wins", args: []string{"-c", "/path/1.json", "-config", "/path/2.json"}, want: "/path/2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
