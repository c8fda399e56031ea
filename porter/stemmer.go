// Package porter implements the Porter stemming algorithm (1980) over
// byte slices of lowercase English letters.
package porter

import (
	"bytes"

	"github.com/oarkflow/stem/lib"
)

// Consonant reports whether the letter at offset is a consonant. A `y` is a
// consonant at offset 0 and after a vowel; any byte outside a-z classifies
// as a consonant.
func Consonant(body []byte, offset int) bool {
	switch body[offset] {
	case 'A', 'E', 'I', 'O', 'U', 'a', 'e', 'i', 'o', 'u':
		return false
	case 'Y', 'y':
		if offset == 0 {
			return true
		}
		return !Consonant(body, offset-1)
	}
	return true
}

func Vowel(body []byte, offset int) bool {
	return !Consonant(body, offset)
}

const (
	vowelState = iota
	consonantState
)

// Measure counts the vowel-run to consonant-run transitions in body, the
// [C](VC)^m[V] exponent of the collapsed consonant/vowel pattern.
// Measure(nil) is 0.
func Measure(body []byte) int {
	measure := 0
	if len(body) > 0 {
		var state int
		if Vowel(body, 0) {
			state = vowelState
		} else {
			state = consonantState
		}
		for i := 0; i < len(body); i++ {
			if Vowel(body, i) && state == consonantState {
				state = vowelState
			} else if Consonant(body, i) && state == vowelState {
				state = consonantState
				measure++
			}
		}
	}
	return measure
}

func hasVowel(body []byte) bool {
	for i := 0; i < len(body); i++ {
		if Vowel(body, i) {
			return true
		}
	}
	return false
}

// doubleConsonant reports whether body ends with two equal consonants.
func doubleConsonant(body []byte) bool {
	size := len(body)
	if size < 2 {
		return false
	}
	return body[size-1] == body[size-2] && Consonant(body, size-1) && Consonant(body, size-2)
}

// starO reports whether body ends consonant-vowel-consonant where the final
// consonant is not w, x or y.
func starO(body []byte) bool {
	size := len(body) - 1
	if size >= 2 && Consonant(body, size-2) && Vowel(body, size-1) && Consonant(body, size) {
		return body[size] != 'w' && body[size] != 'x' && body[size] != 'y'
	}
	return false
}

func oneA(body []byte) []byte {
	if hasSuffix(body, lib.ToByte("sses")) || hasSuffix(body, lib.ToByte("ies")) {
		return body[:len(body)-2]
	} else if hasSuffix(body, lib.ToByte("ss")) {
		return body
	} else if hasSuffix(body, lib.ToByte("s")) {
		return body[:len(body)-1]
	}
	return body
}

// oneBA cleans up after an ed/ing removal in oneB.
func oneBA(body []byte) []byte {
	if hasSuffix(body, lib.ToByte("at")) || hasSuffix(body, lib.ToByte("bl")) || hasSuffix(body, lib.ToByte("iz")) {
		return append(body, 'e')
	} else if doubleConsonant(body) {
		switch body[len(body)-1] {
		case 'l', 's', 'z':
		default:
			return body[:len(body)-1]
		}
	} else if Measure(body) == 1 && starO(body) {
		return append(body, 'e')
	}
	return body
}

func oneB(body []byte) []byte {
	if hasSuffix(body, lib.ToByte("eed")) {
		if Measure(body[:len(body)-3]) > 0 {
			return body[:len(body)-1]
		}
	} else if hasSuffix(body, lib.ToByte("ed")) {
		if hasVowel(body[:len(body)-2]) {
			return oneBA(body[:len(body)-2])
		}
	} else if hasSuffix(body, lib.ToByte("ing")) {
		if hasVowel(body[:len(body)-3]) {
			return oneBA(body[:len(body)-3])
		}
	}
	return body
}

func oneC(body []byte) []byte {
	if hasSuffix(body, lib.ToByte("y")) && hasVowel(body[:len(body)-1]) {
		body[len(body)-1] = 'i'
	}
	return body
}

func fiveA(body []byte) []byte {
	if !hasSuffix(body, lib.ToByte("e")) {
		return body
	}
	stem := body[:len(body)-1]
	if m := Measure(stem); m > 1 || (m == 1 && !starO(stem)) {
		return stem
	}
	return body
}

func fiveB(body []byte) []byte {
	if hasSuffix(body, lib.ToByte("ll")) && Measure(body) > 1 {
		return body[:len(body)-1]
	}
	return body
}

// Stem reduces a word to its Porter stem. The input is lowercased and never
// mutated; words of two letters or fewer are returned as-is.
func Stem(body []byte) []byte {
	word := bytes.TrimSpace(lib.ToLowerBytes(body))
	if len(word) <= 2 {
		return word
	}
	return fiveB(fiveA(four(three(two(oneC(oneB(oneA(word))))))))
}

// StemString is the string form of Stem.
func StemString(word string) string {
	return lib.FromByte(Stem(lib.ToByte(word)))
}

func hasSuffix(body []byte, suffix []byte) bool {
	size := len(body)
	if size < len(suffix) {
		return false
	}
	for i := 0; i < len(suffix); i++ {
		if body[size-i-1] != suffix[len(suffix)-i-1] {
			return false
		}
	}
	return true
}
