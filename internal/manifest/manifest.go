// Package manifest holds the static catalog of FY2026 budget
// justification documents and knows how to derive each document's remote
// URL and local save path.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jbookdl/jbookdl/pkg/jbooklib"
)

// Encoding selects how a source derives an entry's remote URL.
type Encoding string

const (
	// EncodePath percent-encodes the whole "<category>/<name>.<ext>"
	// relative path before joining it to the base URL (Army portal).
	EncodePath Encoding = "path"
	// EncodeName percent-encodes only "<name>.<ext>" (Air Force portal,
	// which serves all documents from one flat directory).
	EncodeName Encoding = "name"
	// EncodeNone joins "<dir>/<name>.<ext>" to the base URL verbatim
	// (Defense-Wide portal, whose names carry no reserved characters).
	EncodeNone Encoding = "none"
	// EncodeAbsolute uses the entry's URL field as-is (DoD Summary).
	EncodeAbsolute Encoding = "absolute"
)

var ErrUnknownService = errors.New("unknown service")

// Entry is one downloadable document.
type Entry struct {
	// Category is the taxonomy folder the document is filed under.
	// Empty for sources that save directly under the service folder.
	Category string `yaml:"category,omitempty"`
	// Name is the document's base file name, without extension.
	Name string `yaml:"name,omitempty"`
	// Ext is the file extension (xml, json, xlsx), without dot.
	Ext string `yaml:"ext,omitempty"`
	// Dir is an optional URL subdirectory between the source base URL
	// and the file name.
	Dir string `yaml:"dir,omitempty"`
	// URL is the absolute document URL for EncodeAbsolute sources.
	URL string `yaml:"url,omitempty"`
	// SaveAs overrides the derived local file name, extension included.
	SaveAs string `yaml:"save_as,omitempty"`
}

// FileName returns the sanitized local file name for the entry.
func (e Entry) FileName() string {
	if e.SaveAs != "" {
		return e.SaveAs
	}
	return jbooklib.SanitizeComponent(e.Name) + "." + e.Ext
}

// Source is one document portal with its entries.
type Source struct {
	// Service is the local folder name (Army, AirForce, DefenseWide,
	// DoD_Summary) and the name accepted by service filters.
	Service string `yaml:"service"`
	// Tag prefixes result-line labels (Army, AF, DW).
	Tag string `yaml:"tag,omitempty"`
	// Label is the human heading printed before the source's batch.
	Label string `yaml:"label"`
	// BaseURL is the portal root documents are fetched from.
	BaseURL string `yaml:"base_url,omitempty"`
	// Encoding selects the URL derivation style.
	Encoding Encoding `yaml:"encoding"`

	Entries []Entry `yaml:"entries"`
}

// EntryURL derives the remote URL for an entry of this source.
func (s *Source) EntryURL(e Entry) string {
	switch s.Encoding {
	case EncodeAbsolute:
		return e.URL
	case EncodeName:
		return s.BaseURL + "/" + quotePath(e.Name+"."+e.Ext)
	case EncodeNone:
		return s.BaseURL + "/" + e.Dir + "/" + e.Name + "." + e.Ext
	default:
		return s.BaseURL + "/" + quotePath(e.Category+"/"+e.Name+"."+e.Ext)
	}
}

// EntryLabel returns the label printed on an entry's result line.
func (s *Source) EntryLabel(e Entry) string {
	if s.Tag == "" || e.Category == "" {
		return e.FileName()
	}
	return fmt.Sprintf("%s/%s/%s.%s", s.Tag, e.Category, e.Name, e.Ext)
}

// EntryPath returns the entry's save path below root, with every
// manifest-derived component sanitized.
func (s *Source) EntryPath(root string, e Entry) string {
	parts := []string{root, jbooklib.SanitizeComponent(s.Service)}
	if e.Category != "" {
		parts = append(parts, jbooklib.SanitizeComponent(e.Category))
	}
	parts = append(parts, e.FileName())
	return filepath.Join(parts...)
}

// quotePath percent-encodes every byte outside the RFC 3986 unreserved
// set, keeping slashes, matching how the portals link their documents.
func quotePath(p string) string {
	var b strings.Builder
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '/' || c == '-' || c == '.' || c == '_' || c == '~',
			'A' <= c && c <= 'Z',
			'a' <= c && c <= 'z',
			'0' <= c && c <= '9':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// EntryCount returns the total number of entries across sources.
func EntryCount(sources []Source) (n int) {
	for i := range sources {
		n += len(sources[i].Entries)
	}
	return
}

// Filter selects sources whose service name matches one of the given
// names (case-insensitive, common aliases accepted). An empty name list
// selects everything.
func Filter(sources []Source, names []string) ([]Source, error) {
	if len(names) == 0 {
		return sources, nil
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		canon, ok := serviceAliases[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownService, name)
		}
		want[canon] = true
	}
	var out []Source
	for _, s := range sources {
		if want[strings.ToLower(s.Service)] {
			out = append(out, s)
		}
	}
	return out, nil
}

var serviceAliases = map[string]string{
	"army":         "army",
	"airforce":     "airforce",
	"air-force":    "airforce",
	"af":           "airforce",
	"defensewide":  "defensewide",
	"defense-wide": "defensewide",
	"dw":           "defensewide",
	"summary":      "dod_summary",
	"dod_summary":  "dod_summary",
	"dod-summary":  "dod_summary",
}

// ServiceNames returns the canonical names accepted by Filter, in
// manifest order.
func ServiceNames(sources []Source) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		out = append(out, strings.ToLower(s.Service))
	}
	return out
}
