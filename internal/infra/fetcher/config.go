// Package fetcher retrieves RSS feeds and article pages from the network.
package fetcher

import (
	"time"

	"briefing-feed/pkg/config"
)

// Config holds the configuration for feed and page fetching.
type Config struct {
	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration

	// MaxBodySize is the maximum HTTP response body size in bytes.
	// Responses exceeding this limit are rejected to prevent memory exhaustion.
	MaxBodySize int64

	// MaxRedirects is the maximum number of HTTP redirects to follow.
	MaxRedirects int

	// DenyPrivateIPs blocks requests resolving to private networks (SSRF).
	DenyPrivateIPs bool

	// UserAgent identifies the crawler to origin servers.
	UserAgent string
}

// DefaultConfig returns the default fetch configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:        10 * time.Second,
		MaxBodySize:    10 << 20, // 10MB
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "briefing-feed/1.0 (+https://github.com/briefing-feed)",
	}
}

// LoadConfigFromEnv reads the fetch configuration from environment variables,
// falling back to defaults.
func LoadConfigFromEnv() Config {
	def := DefaultConfig()
	return Config{
		Timeout:        config.GetEnvDuration("FETCH_TIMEOUT", def.Timeout),
		MaxBodySize:    int64(config.GetEnvInt("FETCH_MAX_BODY_SIZE", int(def.MaxBodySize))),
		MaxRedirects:   config.GetEnvInt("FETCH_MAX_REDIRECTS", def.MaxRedirects),
		DenyPrivateIPs: config.GetEnvBool("FETCH_DENY_PRIVATE_IPS", def.DenyPrivateIPs),
		UserAgent:      config.GetEnvString("FETCH_USER_AGENT", def.UserAgent),
	}
}
