package porter

import (
	"github.com/oarkflow/stem/lib"
)

// suffixRule rewrites a matched suffix when the remaining stem passes the
// step's measure gate and, if set, the extra stem condition.
type suffixRule struct {
	suffix  []byte
	replace []byte
	cond    func(stem []byte) bool
}

func rule(suffix, replace string) suffixRule {
	return suffixRule{suffix: lib.ToByte(suffix), replace: lib.ToByte(replace)}
}

// Rule tables are ordered most-specific first; within a step at most one
// rule fires, and a matched suffix whose gate fails ends the step.
var (
	stepTwoRules = []suffixRule{
		rule("ational", "ate"),
		rule("tional", "tion"),
		rule("enci", "ence"),
		rule("anci", "ance"),
		rule("izer", "ize"),
		rule("bli", "ble"),
		rule("alli", "al"),
		rule("entli", "ent"),
		rule("eli", "e"),
		rule("ousli", "ous"),
		rule("ization", "ize"),
		rule("ation", "ate"),
		rule("ator", "ate"),
		rule("alism", "al"),
		rule("iveness", "ive"),
		rule("fulness", "ful"),
		rule("ousness", "ous"),
		rule("aliti", "al"),
		rule("iviti", "ive"),
		rule("biliti", "ble"),
		rule("logi", "log"),
	}

	stepThreeRules = []suffixRule{
		rule("icate", "ic"),
		rule("ative", ""),
		rule("alize", "al"),
		rule("iciti", "ic"),
		rule("ical", "ic"),
		rule("ful", ""),
		rule("ness", ""),
	}

	stepFourRules = []suffixRule{
		rule("al", ""),
		rule("ance", ""),
		rule("ence", ""),
		rule("er", ""),
		rule("ic", ""),
		rule("able", ""),
		rule("ible", ""),
		rule("ant", ""),
		rule("ement", ""),
		rule("ment", ""),
		rule("ent", ""),
		{suffix: lib.ToByte("ion"), replace: nil, cond: endsSorT},
		rule("ou", ""),
		rule("ism", ""),
		rule("ate", ""),
		rule("iti", ""),
		rule("ous", ""),
		rule("ive", ""),
		rule("ize", ""),
	}
)

func endsSorT(stem []byte) bool {
	if len(stem) == 0 {
		return false
	}
	last := stem[len(stem)-1]
	return last == 's' || last == 't'
}

func applyRules(body []byte, rules []suffixRule, minMeasure int) []byte {
	for _, r := range rules {
		if !hasSuffix(body, r.suffix) {
			continue
		}
		stem := body[:len(body)-len(r.suffix)]
		if Measure(stem) > minMeasure && (r.cond == nil || r.cond(stem)) {
			return append(stem, r.replace...)
		}
		return body
	}
	return body
}

func two(body []byte) []byte {
	return applyRules(body, stepTwoRules, 0)
}

func three(body []byte) []byte {
	return applyRules(body, stepThreeRules, 0)
}

func four(body []byte) []byte {
	return applyRules(body, stepFourRules, 1)
}
