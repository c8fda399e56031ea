package tokenizer

import (
	"github.com/oarkflow/stem/porter"
)

type Stem func(string) string

var stems = map[Language]Stem{
	ENGLISH: porter.StemString,
}
