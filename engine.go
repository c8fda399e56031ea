// Package stem exposes Porter stemming behind a reusable, optionally
// caching engine. The algorithm itself lives in the porter subpackage;
// an Engine only adds tokenization, memoization and batching on top of it.
package stem

import (
	"runtime"
	"strings"

	"github.com/oarkflow/gopool"

	"github.com/oarkflow/stem/cache"
	"github.com/oarkflow/stem/porter"
	"github.com/oarkflow/stem/tokenizer"
)

const defaultCacheSize = 10000

type Engine struct {
	config *Config
	cache  *cache.LRU[string, string]
}

func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = tokenizer.ENGLISH
	}
	if !tokenizer.IsSupportedLanguage(cfg.DefaultLanguage) {
		return nil, tokenizer.LanguageNotSupported
	}
	if cfg.TokenizerConfig == nil {
		cfg.TokenizerConfig = &tokenizer.Config{}
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = defaultCacheSize
	}
	eng := &Engine{config: cfg}
	if !cfg.DisableCache {
		eng.cache = cache.NewLRU[string, string](cfg.CacheSize)
	}
	return eng, nil
}

func (e *Engine) Config() *Config {
	return e.config
}

// Stem returns the Porter stem of a single word.
func (e *Engine) Stem(word string) string {
	if e.cache == nil {
		return porter.StemString(word)
	}
	if stemmed, ok := e.cache.Get(word); ok {
		return stemmed
	}
	stemmed := porter.StemString(word)
	e.cache.Put(word, stemmed)
	return stemmed
}

// StemTokens stems every token in order. The input slice is not modified.
func (e *Engine) StemTokens(words []string) []string {
	out := make([]string, len(words))
	for i, word := range words {
		out[i] = e.Stem(word)
	}
	return out
}

// StemText tokenizes text, stems every token and joins the stems with
// single spaces. Empty input yields an empty string.
func (e *Engine) StemText(text string) (string, error) {
	tokens, err := tokenizer.Tokenize(&tokenizer.TokenizeParams{
		Text:            text,
		Language:        e.config.DefaultLanguage,
		AllowDuplicates: true,
	}, e.config.TokenizerConfig)
	if err != nil {
		return "", err
	}
	builder := builderPool.Get()
	defer func() {
		builder.Reset()
		builderPool.Put(builder)
	}()
	// A tokenizer configured with EnableStemming already stems its
	// tokens; stemming them again here would apply Porter twice.
	preStemmed := e.config.TokenizerConfig.EnableStemming
	for i, token := range tokens {
		if i > 0 {
			builder.WriteByte(' ')
		}
		if preStemmed {
			builder.WriteString(token)
		} else {
			builder.WriteString(e.Stem(token))
		}
	}
	return builder.String(), nil
}

// StemBatch stems words concurrently with a worker pool and returns the
// stems in input order. Falls back to StemTokens for a single worker.
func (e *Engine) StemBatch(words []string, noOfWorker int) []string {
	if noOfWorker <= 0 {
		noOfWorker = runtime.NumCPU()
	}
	if noOfWorker == 1 || len(words) < 2 {
		return e.StemTokens(words)
	}
	out := make([]string, len(words))
	pool, err := gopool.NewPoolSimple(noOfWorker, func(job gopool.Job[batchItem], workerID int) error {
		out[job.Payload.index] = e.Stem(job.Payload.word)
		return nil
	})
	if err != nil {
		return e.StemTokens(words)
	}
	for i, word := range words {
		pool.Submit(batchItem{index: i, word: word})
	}
	pool.StopAndWait()
	return out
}

type batchItem struct {
	index int
	word  string
}

// Join renders a stem sequence the way result sinks expect it: stems in
// order, separated by single spaces.
func Join(stems []string) string {
	return strings.Join(stems, " ")
}
