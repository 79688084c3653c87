package config

import (
	"os"
	"strconv"
	"time"
)

// CommerceAPIConfig describes the remote commerce GraphQL endpoint.
type CommerceAPIConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// LoadCommerceAPIConfig reads the remote endpoint configuration from env.
func LoadCommerceAPIConfig() CommerceAPIConfig {
	timeout := 10 * time.Second
	if raw := os.Getenv("COMMERCE_API_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}
	return CommerceAPIConfig{
		Endpoint: os.Getenv("COMMERCE_API_URL"),
		Token:    os.Getenv("COMMERCE_API_TOKEN"),
		Timeout:  timeout,
	}
}

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Health endpoint is public, everything else under /api requires auth
	return []string{"/healthz"}
}
