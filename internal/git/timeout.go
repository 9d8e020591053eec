package git

import (
	"os"
	"strconv"
	"time"
)

// TimeoutEnv overrides the per-command git timeout, in seconds.
const TimeoutEnv = "GUP_GIT_TIMEOUT"

// DefaultTimeout is the per-command git timeout when neither the environment
// variable nor the config file overrides it.
const DefaultTimeout = 30 * time.Second

var defaultTimeout = DefaultTimeout

// SetDefaultTimeout overrides the fallback timeout, typically from config.
// The GUP_GIT_TIMEOUT environment variable still takes precedence.
func SetDefaultTimeout(d time.Duration) {
	if d > 0 {
		defaultTimeout = d
	}
}

// Timeout returns the per-command git timeout: GUP_GIT_TIMEOUT seconds if
// set and valid, the configured default otherwise.
func Timeout() time.Duration {
	if v := os.Getenv(TimeoutEnv); v != "" {
		if secs, err := strconv.ParseUint(v, 10, 32); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultTimeout
}
