// Package raw reads environment variables for bootstrap paths that must not
// log, so the logger can configure itself through it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefix-scoped view over the environment
type Conf struct{ prefix string }

// New returns the root view
func New() Conf { return Conf{} }

// Prefix narrows the view by another segment, e.g. "LOG_"
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value or def when absent
func (c Conf) Get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + key)); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1/true/yes in any case; anything else is def
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.Get(key, ""))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt falls back to def on absent or unparsable values
func (c Conf) GetInt(key string, def int) int {
	v, err := strconv.Atoi(c.Get(key, ""))
	if err != nil {
		return def
	}
	return v
}
