package cmd

import (
	"strings"
	"testing"
)

func TestExecute_Version(t *testing.T) {
	out := captureStdout(t, func() {
		if err := Execute([]string{"jbookdl", "version"}, BuildArgs{Version: "1.0.0", BuildType: "dev"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(out, "jbookdl 1.0.0-dev") {
		t.Errorf("version output = %q", out)
	}
}

func TestExecute_List(t *testing.T) {
	out := captureStdout(t, func() {
		if err := Execute([]string{"jbookdl", "list"}, BuildArgs{Version: "1", BuildType: "dev"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	for _, want := range []string{
		"FY2026 budget document manifest:",
		"Army (37 files):",
		"Air Force & Space Force (27 files):",
		"Defense-Wide (25 files):",
		"DoD Summary (9 files):",
		"98 documents in 4 services",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q", want)
		}
	}
}

func TestExecute_ListFiltered(t *testing.T) {
	out := captureStdout(t, func() {
		if err := Execute([]string{"jbookdl", "list", "-s", "army"}, BuildArgs{Version: "1", BuildType: "dev"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(out, "37 documents in 1 services") {
		t.Errorf("filtered list output = %q", out)
	}
	if strings.Contains(out, "DoD Summary") {
		t.Error("filtered list leaked other services")
	}
}
