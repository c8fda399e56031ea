package tokenizer

import (
	"errors"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/oarkflow/stem/lib"
)

const (
	ENGLISH Language = "en"
)

var Languages = []Language{ENGLISH}

var normalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	LanguageNotSupported = errors.New("language not supported")
)

type Language string

type Config struct {
	EnableStemming  bool
	EnableStopWords bool
	StripDiacritics bool
}

type TokenizeParams struct {
	Text            string
	Language        Language
	AllowDuplicates bool
}

type normalizeParams struct {
	token    string
	language Language
}

func IsSupportedLanguage(language Language) bool {
	_, ok := stems[language]
	return ok
}

func splitSentence(text string) []string {
	separators := map[byte]bool{
		' ':  true,
		'\t': true,
		'\n': true,
		'\r': true,
		'.':  true,
		',':  true,
		';':  true,
		'!':  true,
		'?':  true,
	}

	var words []string
	start := 0

	for i := 0; i < len(text); i++ {
		if isSeparator(text[i], separators) {
			if start < i {
				words = append(words, text[start:i])
			}
			start = i + 1
		}
	}

	if start < len(text) {
		words = append(words, text[start:])
	}

	return words
}

func isSeparator(char byte, separators map[byte]bool) bool {
	_, ok := separators[char]
	return ok
}

// Tokenize splits text into lowercase tokens, dropping stopwords and
// stemming each token as configured. Tokens keep their input order.
func Tokenize(params *TokenizeParams, config *Config) ([]string, error) {
	if !IsSupportedLanguage(params.Language) {
		return nil, LanguageNotSupported
	}
	params.Text = lib.ToLower(params.Text)
	splitText := splitSentence(params.Text)
	tokens := make([]string, 0)
	uniqueTokens := make(map[string]struct{})
	for _, token := range splitText {
		normParams := normalizeParams{
			token:    token,
			language: params.Language,
		}
		if normToken := normalizeToken(&normParams, config); normToken != "" {
			if _, ok := uniqueTokens[normToken]; (!ok && !params.AllowDuplicates) || params.AllowDuplicates {
				uniqueTokens[normToken] = struct{}{}
				tokens = append(tokens, normToken)
			}
		}
	}

	return tokens, nil
}

func normalizeToken(params *normalizeParams, config *Config) string {
	token := params.token
	if config.StripDiacritics {
		if folded, _, err := transform.String(normalizer, token); err == nil {
			token = folded
		}
	}
	if _, ok := stopWords[params.language][token]; config.EnableStopWords && ok {
		return ""
	}
	if stem, ok := stems[params.language]; config.EnableStemming && ok {
		token = stem(token)
	}
	return token
}
