package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteLoad_Roundtrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Sources()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Sources()
	if len(got) != len(want) {
		t.Fatalf("got %d sources, want %d", len(got), len(want))
	}
	if EntryCount(got) != EntryCount(want) {
		t.Errorf("entry count %d, want %d", EntryCount(got), EntryCount(want))
	}
	for i := range want {
		if got[i].Service != want[i].Service || got[i].Encoding != want[i].Encoding {
			t.Errorf("source %d: got (%s, %s), want (%s, %s)",
				i, got[i].Service, got[i].Encoding, want[i].Service, want[i].Encoding)
		}
	}
	// spot-check one URL survives the roundtrip
	if got[0].EntryURL(got[0].Entries[0]) != want[0].EntryURL(want[0].Entries[0]) {
		t.Error("entry URL changed across roundtrip")
	}
}

func TestLoad_DefaultsAndErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing encoding defaults to path", func(t *testing.T) {
		path := filepath.Join(dir, "default.yaml")
		doc := "sources:\n  - service: Army\n    label: Army\n    base_url: https://example.mil\n    entries:\n      - category: rdte\n        name: Vol 1\n        ext: xml\n"
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if got[0].Encoding != EncodePath {
			t.Errorf("encoding = %q, want %q", got[0].Encoding, EncodePath)
		}
	})

	t.Run("unknown encoding rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		doc := "sources:\n  - service: Army\n    label: Army\n    encoding: base64\n"
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("want error for unknown encoding, got nil")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("want error for missing file, got nil")
		}
	})
}
