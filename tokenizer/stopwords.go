package tokenizer

import (
	"github.com/oarkflow/stem/tokenizer/stopwords"
)

type StopWords map[string]struct{}

var stopWords = map[Language]StopWords{
	ENGLISH: stopwords.English,
}
