package common

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/vbauerster/mpb/v8"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()
	fn()
	w.Close()
	data, _ := io.ReadAll(r)
	return string(data)
}

func TestPrintRuntimeErr(t *testing.T) {
	out := captureStdout(t, func() {
		PrintRuntimeErr(nil, "download", "load_config", errors.New("boom"))
	})
	if !strings.Contains(out, "download[load_config]: boom") {
		t.Errorf("output = %q", out)
	}
}

func TestPrintRuntimeErr_NilError(t *testing.T) {
	out := captureStdout(t, func() {
		PrintRuntimeErr(nil, "history", "list_runs", nil)
	})
	if !strings.Contains(out, "err is nil") {
		t.Errorf("output = %q", out)
	}
}

func TestGetVersion(t *testing.T) {
	VersionCmdStr = "jbookdl test-version"
	out := captureStdout(t, func() {
		if err := GetVersion(nil); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	if !strings.Contains(out, "jbookdl test-version") {
		t.Errorf("output = %q", out)
	}
}

func TestInitMirrorBar(t *testing.T) {
	p := mpb.New(mpb.WithOutput(io.Discard))
	bar := InitMirrorBar(p, 99)
	if bar == nil {
		t.Fatal("nil bar")
	}
	for i := 0; i < 99; i++ {
		bar.Increment()
	}
	p.Wait()
	if !bar.Completed() {
		t.Error("bar not completed after 99 increments")
	}
}
