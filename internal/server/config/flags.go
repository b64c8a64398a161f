package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string    gRPC bind address (":50051")
//	-w string    HTTP bind address (":8080")
//	-d string    PostgreSQL DSN
//	-l string    log level
//	-s string    JWT HMAC secret key
//	-t int       access token validity, minutes
//	-m float     biometric match threshold
//	-q bool      require a captured descriptor for enrolled employees
//	-z string    reference timezone (IANA name)
//	-o duration  session store timeout
//	-u -p -b -g -e  S3 user, password, bucket, region, base endpoint
//
// Unknown arguments are filtered out first with flagx.FilterArgs. A parse
// error panics.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-w", "-d", "-l", "-s", "-t", "-m", "-q", "-z", "-o", "-u", "-p", "-b", "-g", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "w", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")

	fs.Float64Var(&config.MatchThreshold, "m", config.MatchThreshold, "biometric match threshold")
	fs.BoolVar(&config.BiometricRequired, "q", config.BiometricRequired, "require biometric capture at clock-in")
	fs.StringVar(&config.Timezone, "z", config.Timezone, "reference timezone")
	fs.DurationVar(&config.StorageTimeout, "o", config.StorageTimeout, "session store timeout")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 report bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
}
