package manifest

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the YAML layout produced by Write and read by Load. It
// lets users export the built-in manifest, edit it, and mirror from
// their own copy.
type Document struct {
	Sources []Source `yaml:"sources"`
}

// Write encodes sources as YAML.
func Write(w io.Writer, sources []Source) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Sources: sources}); err != nil {
		return err
	}
	return enc.Close()
}

// Load reads a manifest document from path. Sources without an explicit
// encoding default to EncodePath; unknown encodings are rejected.
func Load(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	for i := range doc.Sources {
		s := &doc.Sources[i]
		switch s.Encoding {
		case "":
			s.Encoding = EncodePath
		case EncodePath, EncodeName, EncodeNone, EncodeAbsolute:
		default:
			return nil, fmt.Errorf("manifest %s: source %q has unknown encoding %q", path, s.Service, s.Encoding)
		}
	}
	return doc.Sources, nil
}
