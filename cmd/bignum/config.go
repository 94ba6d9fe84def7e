package main

import (
	"flag"
	"io"
	"os"
	"strings"
)

// EnvPrefix prefixes every environment variable read by the harness.
const EnvPrefix = "BIGNUM_"

// Config holds the harness options.
type Config struct {
	// Factor prints the factors of each operand.
	Factor bool

	// Raw prints the stored ten's complement digits of each operand.
	Raw bool

	// Verbose enables debug logging.
	Verbose bool
}

// ParseConfig reads the configuration from args. Environment variables
// provide the defaults and flags override them.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (cfg Config, err error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	fs.BoolVar(&cfg.Factor, "factor", getEnvBool("FACTOR", false), "print the factors of each operand")
	fs.BoolVar(&cfg.Raw, "raw", getEnvBool("RAW", true), "print the raw ten's complement digits")
	fs.BoolVar(&cfg.Verbose, "v", getEnvBool("VERBOSE", false), "enable debug logging")

	err = fs.Parse(args)
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnvBool returns the boolean held by EnvPrefix+key or defaultVal when it
// is unset or unrecognized.
func getEnvBool(key string, defaultVal bool) bool {
	switch strings.ToLower(os.Getenv(EnvPrefix + key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}

	return defaultVal
}
