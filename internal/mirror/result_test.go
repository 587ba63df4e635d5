package mirror

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jbookdl/jbookdl/pkg/jbooklib"
)

func TestFileResult_Line(t *testing.T) {
	ok := FileResult{
		Label: "Army/rdte/RDTE - Vol 1 - Budget Activity 1.xml",
		Size:  103936,
	}
	line := ok.Line()
	if !strings.HasPrefix(line, "  [OK  ]") {
		t.Errorf("ok line prefix wrong: %q", line)
	}
	if !strings.HasSuffix(line, "101.5 KB") {
		t.Errorf("ok line missing size: %q", line)
	}

	fail := FileResult{
		Label: "DW/BRAC/FY2026_BRAC_Overview.xml",
		Err:   &jbooklib.StatusError{Code: 404},
	}
	line = fail.Line()
	if !strings.HasPrefix(line, "  [FAIL]") {
		t.Errorf("fail line prefix wrong: %q", line)
	}
	if !strings.HasSuffix(line, "HTTP 404") {
		t.Errorf("fail line missing reason: %q", line)
	}
}

func TestFileResult_LineTruncatesLabel(t *testing.T) {
	long := FileResult{Label: strings.Repeat("x", 100), Size: 10}
	line := long.Line()
	if strings.Contains(line, strings.Repeat("x", 73)) {
		t.Errorf("label not truncated to 72 chars: %q", line)
	}

	// Labels from user manifests can carry multibyte runes; truncation
	// must not split one.
	wide := FileResult{Label: strings.Repeat("é", 100), Size: 10}
	line = wide.Line()
	if !utf8.ValidString(line) {
		t.Errorf("truncation split a rune: %q", line)
	}
	if strings.Contains(line, strings.Repeat("é", 73)) {
		t.Errorf("label not truncated to 72 runes: %q", line)
	}
	if !strings.Contains(line, strings.Repeat("é", 72)) {
		t.Errorf("label truncated short of 72 runes: %q", line)
	}
}

func TestRunResult_Tally(t *testing.T) {
	r := NewRunResult(3)
	r.Add(FileResult{Label: "a", Size: 1})
	r.Add(FileResult{Label: "b", URL: "https://example.mil/b", Err: errors.New("timeout")})
	r.Add(FileResult{Label: "c", Size: 2})

	if r.Succeeded != 2 || r.Failed != 1 || r.Processed() != 3 {
		t.Errorf("tally = %d/%d (%d processed)", r.Succeeded, r.Failed, r.Processed())
	}
	if r.IsSuccess() {
		t.Error("IsSuccess true despite a failure")
	}
	if len(r.Errors) != 1 || r.Errors[0].URL != "https://example.mil/b" {
		t.Errorf("errors = %+v", r.Errors)
	}
}

func TestRunResult_String(t *testing.T) {
	r := NewRunResult(2)
	r.Add(FileResult{Label: "a", Size: 1})
	r.Add(FileResult{
		Label: "DW/O&M/Volume_2.json",
		URL:   "https://example.mil/Volume_2.json",
		Err:   &jbooklib.StatusError{Code: 503},
	})

	s := r.String()
	for _, want := range []string{
		"Done. 1/2 files downloaded.",
		"Failed (1):",
		"FAIL  DW/O&M/Volume_2.json",
		"URL: https://example.mil/Volume_2.json",
		"Reason: HTTP 503",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}

	clean := NewRunResult(1)
	clean.Add(FileResult{Label: "a", Size: 1})
	if !strings.Contains(clean.String(), "All files downloaded successfully!") {
		t.Errorf("clean summary missing success note:\n%s", clean.String())
	}
}
