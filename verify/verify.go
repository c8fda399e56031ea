// Package verify compares stemmer output against a line-aligned word list
// and expected-stem list. Mismatches are reported, never treated as errors.
package verify

import (
	"fmt"
	"runtime"
	"time"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"
	"github.com/oarkflow/xid"

	"github.com/oarkflow/stem"
	"github.com/oarkflow/stem/lib"
)

type Mismatch struct {
	Line     int    `json:"line"`
	Word     string `json:"word"`
	Actual   string `json:"actual"`
	Expected string `json:"expected"`
}

type Report struct {
	Id         int64      `json:"id"`
	Total      int        `json:"total"`
	Mismatched int        `json:"mismatched"`
	Mismatches []Mismatch `json:"mismatches"`
	Took       string     `json:"took"`
}

func (r *Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}

type Options struct {
	Engine  *stem.Engine
	Workers int
	Quiet   bool
}

// Compare stems every word and records a mismatch for each line where the
// stem differs from the expected value. The two slices must be line-aligned.
func Compare(words, expected []string, opts Options) (*Report, error) {
	if len(words) != len(expected) {
		return nil, fmt.Errorf("word list and expected list are misaligned: %d lines vs %d lines", len(words), len(expected))
	}
	engine := opts.Engine
	if engine == nil {
		var err error
		engine, err = stem.GetEngine("verify")
		if err != nil {
			return nil, err
		}
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	actual := engine.StemBatch(words, workers)
	report := &Report{
		Id:    xid.New().Int64(),
		Total: len(words),
	}
	for i, stemmed := range actual {
		if stemmed != expected[i] {
			report.Mismatches = append(report.Mismatches, Mismatch{
				Line:     i + 1,
				Word:     words[i],
				Actual:   stemmed,
				Expected: expected[i],
			})
		}
	}
	report.Mismatched = len(report.Mismatches)
	report.Took = time.Since(start).String()
	if !opts.Quiet {
		log.Info().
			Int("total", report.Total).
			Int("mismatched", report.Mismatched).
			Str("latency", report.Took).
			Msg("Verified stems...")
	}
	return report, nil
}

// Run reads the word list and expected-stem list from disk and compares them.
func Run(wordsPath, expectedPath string, opts Options) (*Report, error) {
	words, err := lib.ReadFileLines(wordsPath)
	if err != nil {
		return nil, err
	}
	expected, err := lib.ReadFileLines(expectedPath)
	if err != nil {
		return nil, err
	}
	return Compare(words, expected, opts)
}
