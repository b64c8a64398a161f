package config

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   address and port of the gRPC server
//	-t int      request timeout, seconds
//	-k string   admin access token
//	-r string   directory for downloaded reports
//
// Everything else on the command line is left for the command dispatcher.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-k", "-r"})

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.Token, "k", cfg.Token, "admin access token")
	fs.StringVar(&cfg.ReportsDir, "r", cfg.ReportsDir, "reports download directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}

// Positional returns the arguments that are not client flags, i.e. the
// command and its operands.
func Positional(args []string) []string {
	known := map[string]bool{"-a": true, "-t": true, "-k": true, "-r": true, "-c": true, "-config": true, "--config": true}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if name, _, ok := strings.Cut(a, "="); ok && known[name] {
			continue
		}
		if known[a] {
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
			}
			continue
		}
		out = append(out, a)
	}
	return out
}
