package verify

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLines(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCompare(t *testing.T) {
	words := []string{"caresses", "ponies", "ties", "caress", "cats"}
	expected := []string{"caress", "poni", "ti", "caress", "cat"}
	report, err := Compare(words, expected, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 5 || report.Mismatched != 0 {
		t.Errorf("unexpected report: %+v", report)
	}
	if report.Id == 0 {
		t.Error("expected a report id")
	}
}

func TestCompareRecordsMismatches(t *testing.T) {
	words := []string{"caresses", "cats"}
	expected := []string{"caress", "dog"}
	report, err := Compare(words, expected, Options{Quiet: true})
	if err != nil {
		t.Fatal(err)
	}
	if report.Mismatched != 1 {
		t.Fatalf("Mismatched = %d, want 1", report.Mismatched)
	}
	m := report.Mismatches[0]
	if m.Line != 2 || m.Word != "cats" || m.Actual != "cat" || m.Expected != "dog" {
		t.Errorf("unexpected mismatch record: %+v", m)
	}
}

func TestCompareMisaligned(t *testing.T) {
	_, err := Compare([]string{"cats"}, []string{"cat", "extra"}, Options{Quiet: true})
	if err == nil {
		t.Fatal("expected an error for misaligned lists")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	wordsPath := writeLines(t, dir, "voc.txt", []string{"caresses", "ponies", "feed", "motoring"})
	expectedPath := writeLines(t, dir, "output.txt", []string{"caress", "poni", "feed", "motor"})
	report, err := Run(wordsPath, expectedPath, Options{Quiet: true, Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if report.Total != 4 || report.Mismatched != 0 {
		t.Errorf("unexpected report: %+v", report)
	}
	bt, err := report.JSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(bt), "\"total\":4") {
		t.Errorf("unexpected report JSON: %s", bt)
	}
}

func TestRunMissingFile(t *testing.T) {
	if _, err := Run("no-such-file", "also-missing", Options{Quiet: true}); err == nil {
		t.Fatal("expected an error for missing files")
	}
}
