package stem

import (
	"github.com/oarkflow/stem/tokenizer"
)

type Config struct {
	Key             string             `json:"key"`
	DefaultLanguage tokenizer.Language `json:"default_language"`
	TokenizerConfig *tokenizer.Config
	CacheSize       int  `json:"cache_size"`
	DisableCache    bool `json:"disable_cache"`
	Workers         int  `json:"workers"`
}

// MergeConfigs merges multiple Config structs into one.
func MergeConfigs(configs ...*Config) *Config {
	mergedConfig := &Config{}

	for _, cfg := range configs {
		if cfg.Key != "" {
			mergedConfig.Key = cfg.Key
		}
		if cfg.DefaultLanguage != "" {
			mergedConfig.DefaultLanguage = cfg.DefaultLanguage
		}
		if cfg.TokenizerConfig != nil {
			mergedConfig.TokenizerConfig = cfg.TokenizerConfig
		}
		if cfg.CacheSize != 0 {
			mergedConfig.CacheSize = cfg.CacheSize
		}
		if cfg.DisableCache {
			mergedConfig.DisableCache = cfg.DisableCache
		}
		if cfg.Workers != 0 {
			mergedConfig.Workers = cfg.Workers
		}
	}

	return mergedConfig
}
