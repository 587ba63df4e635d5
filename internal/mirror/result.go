package mirror

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jbookdl/jbookdl/pkg/jbooklib"
)

// FileResult is the outcome of one document fetch.
type FileResult struct {
	// Label identifies the document on result lines.
	Label string
	// URL is the remote URL that was fetched.
	URL string
	// Path is the local destination path.
	Path string
	// Size is the number of bytes written on success.
	Size int64
	// Err is nil on success.
	Err error
}

// Line renders the result as a fixed-width report line, e.g.
//
//	[OK  ]  Army/rdte/RDTE - Vol 1 - Budget Activity 1.xml      101.5 KB
func (f FileResult) Line() string {
	status := "OK"
	msg := jbooklib.ContentSize(f.Size).String()
	if f.Err != nil {
		status = "FAIL"
		msg = jbooklib.FailureReason(f.Err)
	}
	label := f.Label
	if utf8.RuneCountInString(label) > 72 {
		label = string([]rune(label)[:72])
	}
	return fmt.Sprintf("  [%-4s]  %-72s  %s", status, label, msg)
}

// FileError records one failed download for the final report.
type FileError struct {
	// Label identifies the document that failed.
	Label string
	// URL is the URL that failed to download.
	URL string
	// Reason is a short human-readable failure message.
	Reason string
}

// RunResult tallies a mirror run. It tracks success and failure counts
// and keeps failure details for the final report.
type RunResult struct {
	// Succeeded is the count of successful downloads.
	Succeeded int
	// Failed is the count of failed downloads.
	Failed int
	// Total is the number of manifest entries in the run.
	Total int
	// Errors holds details about each failed download.
	Errors []FileError
}

// NewRunResult creates a RunResult expecting total entries.
func NewRunResult(total int) *RunResult {
	return &RunResult{
		Total:  total,
		Errors: make([]FileError, 0),
	}
}

// Add records a file outcome into the tally.
func (r *RunResult) Add(f FileResult) {
	if f.Err == nil {
		r.Succeeded++
		return
	}
	r.Failed++
	r.Errors = append(r.Errors, FileError{
		Label:  f.Label,
		URL:    f.URL,
		Reason: jbooklib.FailureReason(f.Err),
	})
}

// IsSuccess returns true if no download failed.
func (r *RunResult) IsSuccess() bool {
	return r.Failed == 0
}

// Processed returns how many entries have an outcome so far.
func (r *RunResult) Processed() int {
	return r.Succeeded + r.Failed
}

// String returns the summary block printed after a run: counts first,
// then one detail block per failure.
func (r *RunResult) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Done. %d/%d files downloaded.\n", r.Succeeded, r.Total))

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("\nFailed (%d):\n", r.Failed))
		for _, e := range r.Errors {
			sb.WriteString(fmt.Sprintf("  FAIL  %s\n", e.Label))
			sb.WriteString(fmt.Sprintf("        URL: %s\n", e.URL))
			sb.WriteString(fmt.Sprintf("        Reason: %s\n", e.Reason))
		}
	} else {
		sb.WriteString("\nAll files downloaded successfully!\n")
	}

	return sb.String()
}
