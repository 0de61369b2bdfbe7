package remote

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds a single lookup when Config.Timeout is unset.
const DefaultTimeout = 5 * time.Second

// Errors for client configuration
var (
	ErrConfigMissingBaseURL = errors.New("remote: base url is required")
	ErrConfigInvalidBaseURL = errors.New("remote: base url must be absolute")
	ErrConfigInvalidTimeout = errors.New("remote: timeout must be positive")
)

// Config holds the address of an owning service and the bound on each call.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Validate checks the configuration and fills in the default timeout.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return ErrConfigMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrConfigInvalidBaseURL
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Timeout < 0 {
		return ErrConfigInvalidTimeout
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}
