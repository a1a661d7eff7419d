// Package config reads configuration from namespaced environment variables
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"chartbox/internal/platform/logger"
)

// Conf scopes lookups under a prefix chain, e.g.
// New().Prefix("CORE_CHARTS_").MayInt("MAX_PAGE_SIZE", 100)
type Conf struct{ prefix string }

// New returns the root view over the environment
func New() Conf { return Conf{} }

// Prefix narrows the view by another prefix segment
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) get(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

// MustString panics when the key is absent or blank
func (c Conf) MustString(key string) string {
	v := c.get(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.prefix+key).Msg("missing required env")
	}
	return v
}

// MayString returns def when the key is absent or blank
func (c Conf) MayString(key, def string) string {
	if v := c.get(key); v != "" {
		return v
	}
	return def
}

// MayInt returns def when the key is absent or unparsable; bad values warn
func (c Conf) MayInt(key string, def int) int {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.prefix+key).Str("value", s).Msg("invalid int, using default")
		return def
	}
	return v
}

// MayBool returns def when the key is absent or unparsable; bad values warn
func (c Conf) MayBool(key string, def bool) bool {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.prefix+key).Str("value", s).Msg("invalid bool, using default")
		return def
	}
	return v
}

// MayDuration returns def when the key is absent or unparsable; bad values warn
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.get(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.prefix+key).Str("value", s).Msg("invalid duration, using default")
		return def
	}
	return d
}
