package stem

import (
	"github.com/oarkflow/xsync"

	"github.com/oarkflow/stem/tokenizer"
)

var engines xsync.IMap[string, *Engine]

func init() {
	engines = xsync.NewMap[string, *Engine]()
}

func GetConfig(key string) *Config {
	return &Config{
		Key:             key,
		DefaultLanguage: tokenizer.ENGLISH,
		// Stemming stays off in the tokenizer: the engine stems tokens
		// itself so results go through its cache.
		TokenizerConfig: &tokenizer.Config{},
	}
}

func GetEngine(key string) (*Engine, error) {
	eng, _ := engines.Get(key)
	if eng != nil {
		return eng, nil
	}
	return GetOrSetEngine(key, GetConfig(key))
}

func GetOrSetEngine(key string, config *Config) (*Engine, error) {
	eng, _ := engines.Get(key)
	if eng != nil {
		return eng, nil
	}
	eng, err := New(config)
	if err != nil {
		return nil, err
	}
	engines.Set(key, eng)
	return eng, nil
}

func AddEngine(key string, engine *Engine) {
	engines.Set(key, engine)
}
