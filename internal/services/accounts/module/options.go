package module

import "chartbox/internal/platform/config"

// Options holds configuration settings for the accounts module
type Options struct {
	SessionTTLMs  int64
	MaxBatchSize  int
	MaxInboxLimit int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	af := cfg.Prefix("CORE_ACCOUNTS_")
	return Options{
		SessionTTLMs:  int64(af.MayInt("SESSION_TTL_MS", 30*60*1000)),
		MaxBatchSize:  af.MayInt("MAX_BATCH_SIZE", 50),
		MaxInboxLimit: af.MayInt("MAX_INBOX_LIMIT", 100),
	}
}
