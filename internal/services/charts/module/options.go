package module

import "chartbox/internal/platform/config"

// Options holds configuration settings for the charts module
type Options struct {
	MaxPageSize    int
	MaxRandomCount int
	MaxBatchSize   int
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_CHARTS_")
	return Options{
		MaxPageSize:    cf.MayInt("MAX_PAGE_SIZE", 100),
		MaxRandomCount: cf.MayInt("MAX_RANDOM_COUNT", 20),
		MaxBatchSize:   cf.MayInt("MAX_BATCH_SIZE", 50),
	}
}
