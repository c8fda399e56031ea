package tokenizer

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(&TokenizeParams{
		Text:     "The Ponies, the cats!",
		Language: ENGLISH,
	}, &Config{})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"the", "ponies", "cats"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeWithStemming(t *testing.T) {
	tokens, err := Tokenize(&TokenizeParams{
		Text:     "caresses ponies motoring",
		Language: ENGLISH,
	}, &Config{EnableStemming: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"caress", "poni", "motor"}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeWithStopWords(t *testing.T) {
	tokens, err := Tokenize(&TokenizeParams{
		Text:     "the cats and the ponies",
		Language: ENGLISH,
	}, &Config{EnableStopWords: true})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"cats", "ponies"}
	if len(tokens) != len(want) {
		t.Fatalf("got %v, want %v", tokens, want)
	}
}

func TestTokenizeDuplicates(t *testing.T) {
	tokens, err := Tokenize(&TokenizeParams{
		Text:            "cats cats cats",
		Language:        ENGLISH,
		AllowDuplicates: true,
	}, &Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Errorf("expected 3 tokens, got %v", tokens)
	}

	tokens, err = Tokenize(&TokenizeParams{
		Text:     "cats cats cats",
		Language: ENGLISH,
	}, &Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 {
		t.Errorf("expected deduplicated tokens, got %v", tokens)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := Tokenize(&TokenizeParams{Text: "", Language: ENGLISH}, &Config{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %v", tokens)
	}
}

func TestTokenizeUnsupportedLanguage(t *testing.T) {
	_, err := Tokenize(&TokenizeParams{Text: "hej", Language: Language("sv")}, &Config{})
	if err != LanguageNotSupported {
		t.Errorf("expected LanguageNotSupported, got %v", err)
	}
}

func TestTokenizeStripDiacritics(t *testing.T) {
	tokens, err := Tokenize(&TokenizeParams{
		Text:     "café",
		Language: ENGLISH,
	}, &Config{StripDiacritics: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 1 || tokens[0] != "cafe" {
		t.Errorf("got %v, want [cafe]", tokens)
	}
}
